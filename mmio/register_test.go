package mmio

import (
	"testing"
	"unsafe"
)

type testCtrl uint32

const (
	testCtrlMode Field = 2<<8 | 0
	testCtrlEn   Field = 1<<8 | 7
)

func (testCtrl) Fields() []FieldInfo {
	return []FieldInfo{
		{Name: "MODE", Field: testCtrlMode, Values: []EnumValue{{"OFF", 0}, {"ON", 1}}},
		{Name: "EN", Field: testCtrlEn},
	}
}

type testBlock struct {
	CTRL   RW32[testCtrl]
	STATUS RO16[uint16]
	_      [1]byte
	SET    WO8[uint8]
	DATA   Union32
}

func TestBlockLayout(t *testing.T) {
	var b testBlock
	if unsafe.Sizeof(b) != 12 {
		t.Fatalf("size %d", unsafe.Sizeof(b))
	}
	if off := b.SET.Addr() - uintptr(unsafe.Pointer(&b)); off != 7 {
		t.Errorf("SET at %d", off)
	}
	if off := b.DATA.Addr() - uintptr(unsafe.Pointer(&b)); off != 8 {
		t.Errorf("DATA at %d", off)
	}
}

func TestLoadStore(t *testing.T) {
	var b testBlock

	v := b.CTRL.Load()
	v = testCtrl(testCtrlMode.Insert(uint32(v), 1))
	b.CTRL.Store(v)
	if got := b.CTRL.Load(); got != 1 {
		t.Fatalf("CTRL = %#x", got)
	}

	// Simulate hardware updating a read-only register.
	*(*uint16)(unsafe.Pointer(&b.STATUS)) = 0xABCD
	if got := b.STATUS.Load(); got != 0xABCD {
		t.Fatalf("STATUS = %#x", got)
	}

	b.SET.Store(0x5A)
	if got := *(*uint8)(unsafe.Pointer(&b.SET)); got != 0x5A {
		t.Fatalf("SET = %#x", got)
	}
}

func TestRegisterShape(t *testing.T) {
	var b testBlock
	tests := []struct {
		name   string
		reg    Register
		access Access
		bits   uint
		fields int
	}{
		{"CTRL", &b.CTRL, ReadWrite, 32, 2},
		{"STATUS", &b.STATUS, ReadOnly, 16, 0},
		{"SET", &b.SET, WriteOnly, 8, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.reg.Access() != tc.access {
				t.Errorf("access %v, want %v", tc.reg.Access(), tc.access)
			}
			if tc.reg.Bits() != tc.bits {
				t.Errorf("bits %d, want %d", tc.reg.Bits(), tc.bits)
			}
			if n := len(tc.reg.Describe()); n != tc.fields {
				t.Errorf("%d fields, want %d", n, tc.fields)
			}
		})
	}
}

type viewA uint32
type viewB uint32

func TestUnionViewsShareStorage(t *testing.T) {
	var b testBlock

	AsRW32[viewA](&b.DATA).Store(0x12345678)
	if got := AsRO32[viewB](&b.DATA).Load(); got != 0x12345678 {
		t.Fatalf("view B read %#x", got)
	}

	AsWO32[viewB](&b.DATA).Store(0xCAFEF00D)
	if got := AsRW32[viewA](&b.DATA).Load(); got != 0xCAFEF00D {
		t.Fatalf("view A read %#x", got)
	}

	if AsRW32[viewA](&b.DATA).Addr() != b.DATA.Addr() {
		t.Fatal("view does not alias the union storage")
	}
}

func TestAccessString(t *testing.T) {
	if ReadOnly.String() != "read-only" || WriteOnly.String() != "write-only" || ReadWrite.String() != "read-write" {
		t.Error("unexpected access names")
	}
	if Access(0).String() != "invalid" {
		t.Error("zero access must be invalid")
	}
	if !ReadWrite.Readable() || !ReadWrite.Writable() || WriteOnly.Readable() || ReadOnly.Writable() {
		t.Error("unexpected access directions")
	}
}

func TestUnionSubwordViews(t *testing.T) {
	var b testBlock
	base := b.DATA.Addr()

	tests := []struct {
		name   string
		addr   uintptr
		offset uintptr
	}{
		{"half 0", b.DATA.Half(0).Addr(), 0},
		{"half 2", b.DATA.Half(2).Addr(), 2},
		{"half 3 rounds down", b.DATA.Half(3).Addr(), 2},
		{"byte 3", b.DATA.Byte(3).Addr(), 3},
		{"byte 1 of half 2", b.DATA.Half(2).Byte(1).Addr(), 3},
	}
	for _, tc := range tests {
		if tc.addr != base+tc.offset {
			t.Errorf("%s at offset %d, want %d", tc.name, tc.addr-base, tc.offset)
		}
	}

	AsWO8[uint8](b.DATA.Byte(1)).Store(0xA5)
	AsWO16[uint16](b.DATA.Half(2)).Store(0xBEEF)
	if got := *(*uint8)(unsafe.Add(unsafe.Pointer(&b.DATA), 1)); got != 0xA5 {
		t.Errorf("byte 1 = %#x", got)
	}
	if got := AsRO16[uint16](b.DATA.Half(2)).Load(); got != 0xBEEF {
		t.Errorf("half 2 = %#x", got)
	}
}
