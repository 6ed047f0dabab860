package periph

import "errors"

var (
	ErrDuplicateType     = errors.New("peripheral type is declared more than once")
	ErrDuplicateInstance = errors.New("peripheral instance name is used more than once")
	ErrDuplicateBase     = errors.New("base address is used by more than one instance")
	ErrOverlap           = errors.New("register blocks of two instances overlap")
	ErrUnknownAlias      = errors.New("alias names an instance that does not exist")
	ErrUnknownIRQ        = errors.New("instance lists an interrupt the vector table does not assign")
	ErrNoLayout          = errors.New("peripheral type has no register block layout")
	ErrUnknownType       = errors.New("unknown peripheral type")
	ErrIndexRange        = errors.New("instance index out of range")
	ErrSizeMismatch      = errors.New("overlay type size does not match the register block")
)
