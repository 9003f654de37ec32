package deposit

import "errors"

var (
	ErrInvalidStatus    = errors.New("invalid deposit status")
	ErrInvalidDecision  = errors.New("decision must be confirmed or rejected")
	ErrAlreadyResolved  = errors.New("deposit already resolved")
	ErrReferenceTooLong = errors.New("tx reference must be 200 characters or less")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusRejected
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func ParseDecision(s string) (Status, error) {
	st := Status(s)
	if !st.IsTerminal() {
		return "", ErrInvalidDecision
	}
	return st, nil
}
