package irq

import "errors"

var (
	ErrCoreNotNegative = errors.New("core exception number must be negative")
	ErrOutOfRange      = errors.New("device vector number is outside the table")
	ErrDuplicateNumber = errors.New("vector number is assigned more than once")
	ErrDuplicateName   = errors.New("vector name is assigned more than once")
	ErrEmptyName       = errors.New("vector has no name")
)
