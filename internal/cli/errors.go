package cli

import (
	"errors"
	"fmt"
)

var errCancelled = errors.New("cancelled: no date accepted")

// rejectedError is returned after a command has already reported a rejected
// input on stdout, so the process still exits non-zero.
type rejectedError struct {
	input  string
	reason string
}

func (e rejectedError) Error() string {
	return fmt.Sprintf("rejected %q: %s", e.input, e.reason)
}

func errRejected(input, reason string) error {
	return rejectedError{input: input, reason: reason}
}
