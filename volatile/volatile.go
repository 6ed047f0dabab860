// Package volatile performs single memory accesses of a fixed width that
// the compiler will not merge, split, reorder across the call, or elide.
//
// Every function issues exactly one load or store of the width named in
// its signature. Peripheral registers must never be accessed through plain
// dereferences.
package volatile

import (
	"sync/atomic"
)

//go:noinline
func LoadUint8(addr *uint8) (val uint8) {
	return *addr
}

//go:noinline
func LoadUint16(addr *uint16) (val uint16) {
	return *addr
}

func LoadUint32(addr *uint32) (val uint32) {
	return atomic.LoadUint32(addr)
}

//go:noinline
func StoreUint8(addr *uint8, val uint8) {
	*addr = val
}

//go:noinline
func StoreUint16(addr *uint16, val uint16) {
	*addr = val
}

func StoreUint32(addr *uint32, val uint32) {
	atomic.StoreUint32(addr, val)
}
