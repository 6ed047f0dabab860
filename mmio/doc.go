// Package mmio models memory-mapped peripheral registers.
//
// A peripheral's register block is a Go struct whose fields are register
// slots (RO32, WO8, RW16, ...) and blank byte arrays for reserved ranges.
// A pointer to the struct at the peripheral's base address is the handle
// firmware uses:
//
//	v := TPM0.SC.Load()
//	v = v.SetCMOD(TPM_SC_CMOD_INTCLK).SetPS(TPM_SC_PS_DIV8)
//	TPM0.SC.Store(v)
//
// Register value types are plain integers. Their getters and setters are
// pure and work on a copy; only Load and Store reach the bus, each as a
// single access of the register's width. The three steps above are not
// atomic: if an interrupt handler touches the same register the caller
// must mask interrupts or use the peripheral's set/clear/toggle alias
// registers where the hardware provides them.
package mmio
