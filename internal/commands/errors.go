package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidation = "BLOG_CMD_VALIDATION"
	codeCanceled   = "BLOG_CMD_CANCELED"
	codeDeadline   = "BLOG_CMD_DEADLINE"
	codeContext    = "BLOG_CMD_CONTEXT"
	codeExecution  = "BLOG_CMD_EXECUTION"
)

// passthrough reports whether err travels unchanged: nil errors and errors
// already carrying go-errors metadata are never re-wrapped.
func passthrough(err error) bool {
	return err == nil || goerrors.IsWrapped(err)
}

func wrapValidationError(err error) error {
	if passthrough(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "blog command rejected by validation").
		WithTextCode(codeValidation)
}

func wrapContextError(err error) error {
	if passthrough(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command cancelled").
			WithTextCode(codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command exceeded its deadline").
			WithTextCode(codeDeadline)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command context failed").
			WithTextCode(codeContext)
	}
}

func wrapExecuteError(err error) error {
	if passthrough(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "blog command failed").
		WithTextCode(codeExecution)
}
