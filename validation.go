package patrimoine

import (
	"errors"
	"fmt"
)

// ErrValidation marks a violation of an input contract: a negative amount
// or quantity, a non-positive price, a duplicate (asset, day) row in a data
// file, or asset metadata inconsistent with the category scheme.
//
// Errors returned by this package match it with [errors.Is].
var ErrValidation = errors.New("validation failed")

// validationErrorf builds an error wrapping [ErrValidation].
func validationErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
