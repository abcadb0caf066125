package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockingInTask is panicked when a scheduled task blocks waiting on its own runtime.
	ErrBlockingInTask = errors.New("signals: blocking call from a scheduled task")

	// ErrSettleInBatch is panicked when Settle is called inside Batch; the held tasks could never run.
	ErrSettleInBatch = errors.New("signals: Settle called inside a batch")
)

// PanicError carries a value recovered from a panicking continuation.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("signals: continuation panicked: %v", e.Value)
}

// Unwrap returns the recovered value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Protect runs fn and converts a panic into a *PanicError.
func Protect(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()

	fn()
	return nil
}
