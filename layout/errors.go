package layout

import "errors"

var (
	ErrOffsetMismatch  = errors.New("register offset does not match the documented offset")
	ErrMisaligned      = errors.New("register is not aligned to its width")
	ErrInvalidWidth    = errors.New("register width must be 8, 16 or 32 bits")
	ErrBlockSize       = errors.New("block size does not match the documented size")
	ErrFieldRange      = errors.New("field does not fit in its register")
	ErrFieldOverlap    = errors.New("fields overlap")
	ErrEnumRange       = errors.New("enumerated value does not fit in its field")
	ErrClusterStride   = errors.New("cluster stride is smaller than the cluster")
	ErrMissingOffset   = errors.New("struct field has no offset tag")
	ErrUnsupportedSlot = errors.New("struct field is not a register slot")
)
