package rio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// IOError is returned when a read or write fails for a reason other than
// interruption. The underlying error is preserved for errors.Is checks.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("rio %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func interrupted(err error) bool {
	return errors.Is(err, unix.EINTR)
}
