package stitch

import "github.com/pkg/errors"

// Threading validation errors through every geometric helper would add a ton
// of noise for conditions that are always caller bugs. Instead, invalid input
// panics, and the public API in the root package recovers to convert to an
// error.

type StitchError error

// Panic with a StitchError.
func fatalf(format string, args ...interface{}) {
	panic(StitchError(errors.Errorf(format, args...)))
}

func HandleStitchPanicRecover(r interface{}) error {
	if r != nil {
		if stitchError, ok := r.(StitchError); ok {
			return stitchError
		}
		panic(r)
	}
	return nil
}
