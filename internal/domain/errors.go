package domain

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid")

func invalid(entity, msg string) error {
	return fmt.Errorf("%w %s: %s", ErrInvalid, entity, msg)
}
