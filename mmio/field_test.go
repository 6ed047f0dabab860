package mmio

import "testing"

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		width uint
		shift uint
		want  uint32
	}{
		{"zero width", 0, 4, 0},
		{"single bit", 1, 0, 0x1},
		{"nibble", 4, 4, 0xF0},
		{"top bit", 1, 31, 0x80000000},
		{"full word", 32, 0, 0xFFFFFFFF},
		{"truncated at top", 8, 28, 0xF0000000},
		{"shift past end", 4, 32, 0},
		{"width past end", 40, 0, 0xFFFFFFFF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mask[uint32](tc.width, tc.shift); got != tc.want {
				t.Errorf("Mask(%d, %d) = %#x, want %#x", tc.width, tc.shift, got, tc.want)
			}
		})
	}
}

func TestMaskNarrowTypes(t *testing.T) {
	if got := Mask[uint8](8, 0); got != 0xFF {
		t.Errorf("Mask[uint8](8, 0) = %#x", got)
	}
	if got := Mask[uint8](3, 6); got != 0xC0 {
		t.Errorf("Mask[uint8](3, 6) = %#x", got)
	}
	if got := Mask[uint16](16, 0); got != 0xFFFF {
		t.Errorf("Mask[uint16](16, 0) = %#x", got)
	}
}

func TestRoundTripTruncates(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 5, 6, 7, 0x7F, 0x80, 0xFF, 0x1234, 0xFFFF, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF}
	for width := uint(1); width <= 32; width++ {
		for shift := uint(0); shift+width <= 32; shift++ {
			for _, v := range values {
				want := v & Mask[uint32](width, 0)
				if got := Decode(Encode(v, width, shift), width, shift); got != want {
					t.Fatalf("width %d shift %d value %#x: got %#x, want %#x", width, shift, v, got, want)
				}
			}
		}
	}
}

func TestEncodeDoesNotSpill(t *testing.T) {
	// A value wider than the field must not leak into neighbouring bits.
	got := Encode[uint32](0xFF, 3, 5)
	if got != 0b111<<5 {
		t.Fatalf("Encode(0xff, 3, 5) = %#x", got)
	}
}

func TestNonInterference(t *testing.T) {
	a := Field(3<<8 | 5)
	b := Field(2<<8 | 0)
	if a.Overlaps(b) {
		t.Fatal("fields unexpectedly overlap")
	}

	raw := a.Encode(6) | b.Encode(3)
	if got := a.Decode(raw); got != 6 {
		t.Errorf("A = %d, want 6", got)
	}
	if got := b.Decode(raw); got != 3 {
		t.Errorf("B = %d, want 3", got)
	}
	if raw&0b11100 != 0 {
		t.Errorf("bits 2..4 touched: %#x", raw)
	}
	if raw&^uint32(0xFF) != 0 {
		t.Errorf("bits 8..31 touched: %#x", raw)
	}

	// Replacing A leaves B alone.
	raw = a.Insert(raw, 1)
	if got := b.Decode(raw); got != 3 {
		t.Errorf("B after insert = %d, want 3", got)
	}
	if got := a.Decode(raw); got != 1 {
		t.Errorf("A after insert = %d, want 1", got)
	}
}

func TestFieldAccessors(t *testing.T) {
	f := Field(4<<8 | 12)
	if f.Shift() != 12 || f.Width() != 4 {
		t.Fatalf("shift %d width %d", f.Shift(), f.Width())
	}
	if f.Mask() != 0xF000 {
		t.Errorf("mask %#x", f.Mask())
	}
	if !f.Fits(16) || f.Fits(15) || !f.Fits(32) {
		t.Error("Fits reported the wrong result")
	}
	if Field(0).Fits(32) {
		t.Error("zero width field must not fit")
	}
	if s := f.String(); s != "[15:12]" {
		t.Errorf("String() = %q", s)
	}
	if s := Field(1<<8 | 7).String(); s != "[7]" {
		t.Errorf("String() = %q", s)
	}
}

func TestBoolFields(t *testing.T) {
	f := Field(1<<8 | 9)
	raw := f.InsertBool(0xF, true)
	if raw != 0x20F || !f.Bool(raw) {
		t.Fatalf("set: %#x", raw)
	}
	raw = f.InsertBool(raw, false)
	if raw != 0xF || f.Bool(raw) {
		t.Fatalf("clear: %#x", raw)
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		a, b Field
		want bool
	}{
		{Field(4<<8 | 0), Field(4<<8 | 4), false},
		{Field(4<<8 | 0), Field(4<<8 | 3), true},
		{Field(1<<8 | 31), Field(8<<8 | 24), true},
		{Field(0), Field(32 << 8), false},
	}
	for _, tc := range tests {
		if got := tc.a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%v overlaps %v = %v", tc.a, tc.b, got)
		}
		if got := tc.b.Overlaps(tc.a); got != tc.want {
			t.Errorf("%v overlaps %v = %v", tc.b, tc.a, got)
		}
	}
}
