package model

import "errors"

var (
	ErrDuplicatePeripheral = errors.New("peripheral name is used more than once")
	ErrUnknownBase         = errors.New("peripheral is derived from a peripheral that does not exist")
	ErrDerivedCycle        = errors.New("peripherals are derived from each other in a cycle")
	ErrTypeConflict        = errors.New("peripherals of one type have different register blocks")
	ErrAccess              = errors.New("unknown access")
	ErrDimName             = errors.New("dim element name has no %s placeholder")
	ErrDimIndex            = errors.New("dimIndex does not list one index per element")
	ErrDimStride           = errors.New("register array stride differs from the register width")
	ErrOverlap             = errors.New("registers share an offset without an alternate declaration")
	ErrIRQRange            = errors.New("interrupt number does not fit a vector")
)
