package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// TransientError is a network-class provider failure (timeout,
// connection error, rate limit, server error). The chain retries these
// a bounded number of times before moving to the next provider. Never
// surfaced to the caller.
type TransientError struct {
	Provider string
	Err      error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: transient failure: %v", e.Provider, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ResponseError is a malformed or unparseable provider response. The
// chain falls through to the next provider immediately, without
// retrying. Never surfaced to the caller.
type ResponseError struct {
	Provider string
	Reason   string
	Err      error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: bad response: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: bad response: %s", e.Provider, e.Reason)
}

func (e *ResponseError) Unwrap() error { return e.Err }

// isTransient reports whether an error should be retried. Anything not
// positively identified as transient is treated as a response failure.
func isTransient(err error) bool {
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
