package repository

import (
	"spotlight-ledger/internal/infra"
	"spotlight-ledger/internal/pkg/pgconv"
)

// writeErr classifies a failed INSERT or UPDATE by its SQLSTATE.
func writeErr(msg string, err error) error {
	switch {
	case pgconv.IsUniqueViolation(err):
		return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
	case pgconv.IsForeignKeyViolation(err):
		return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}

// conditionalErr explains why a guarded UPDATE matched no row: the row is
// missing, or it exists but no longer satisfies the guard.
func conditionalErr(what string, exists bool) error {
	if !exists {
		return infra.NewRepoErr(infra.KindNotFound, what+" not found")
	}
	return infra.NewRepoErr(infra.KindPreconditionFailed, what+" precondition failed")
}
