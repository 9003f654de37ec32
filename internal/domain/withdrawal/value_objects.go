package withdrawal

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidStatus   = errors.New("invalid withdrawal status")
	ErrInvalidDecision = errors.New("decision must be completed or rejected")
	ErrAddressRequired = errors.New("address is required")
	ErrAddressTooLong  = errors.New("address must be 128 characters or less")
	ErrCommentTooLong  = errors.New("comment must be 500 characters or less")
	ErrAlreadyResolved = errors.New("withdrawal already resolved")
)

const (
	maxAddressLen = 128
	maxCommentLen = 500
)

type Address struct {
	value string
}

func NewAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Address{}, ErrAddressRequired
	}
	if utf8.RuneCountInString(s) > maxAddressLen {
		return Address{}, ErrAddressTooLong
	}
	return Address{value: s}, nil
}

func (a Address) Value() string { return a.value }

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > maxCommentLen {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: s}, nil
}

func (c Comment) Value() string { return c.value }
