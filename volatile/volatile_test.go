package volatile

import "testing"

func TestLoadStore(t *testing.T) {
	var b uint8
	var h uint16
	var w uint32

	StoreUint8(&b, 0xA5)
	StoreUint16(&h, 0xBEEF)
	StoreUint32(&w, 0xDEADBEEF)

	if v := LoadUint8(&b); v != 0xA5 {
		t.Errorf("LoadUint8 = %#x, want 0xa5", v)
	}
	if v := LoadUint16(&h); v != 0xBEEF {
		t.Errorf("LoadUint16 = %#x, want 0xbeef", v)
	}
	if v := LoadUint32(&w); v != 0xDEADBEEF {
		t.Errorf("LoadUint32 = %#x, want 0xdeadbeef", v)
	}
}

func TestLoadObservesExternalChange(t *testing.T) {
	var w uint32
	for i := uint32(0); i < 4; i++ {
		// Simulates hardware changing the location between reads.
		w = i
		if v := LoadUint32(&w); v != i {
			t.Fatalf("read %d: got %d", i, v)
		}
	}
}
