package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // Validation accepted / vectors conform
	ExitCheckFailed = 1 // Candidate rejected or vectors failed parity
	ExitError       = 2 // Configuration or runtime error
)

// CheckFailureError indicates the command ran successfully but the check it
// performed did not pass (a rejected answer, a failed parity vector).
type CheckFailureError struct {
	Message string
}

func (e *CheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var checkErr *CheckFailureError
		if errors.As(err, &checkErr) {
			os.Exit(ExitCheckFailed)
		}

		os.Exit(ExitError)
	}
}
