package layout

import (
	"errors"
	"reflect"
	"testing"

	"omibyte.io/vega/mmio"
)

type ctrl uint32

const (
	ctrlEN   mmio.Field = 1<<8 | 0
	ctrlMODE mmio.Field = 2<<8 | 1
)

func (ctrl) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "EN", Field: ctrlEN},
		{Name: "MODE", Field: ctrlMODE, Values: []mmio.EnumValue{{Name: "OFF", Value: 0}, {Name: "FAST", Value: 3}}},
	}
}

type badCtrl uint32

func (badCtrl) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{
		{Name: "A", Field: 4<<8 | 0},
		{Name: "B", Field: 2<<8 | 3},
	}
}

type wideField uint8

func (wideField) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{{Name: "W", Field: 4<<8 | 6}}
}

type badEnum uint16

func (badEnum) Fields() []mmio.FieldInfo {
	return []mmio.FieldInfo{{Name: "E", Field: 1<<8 | 0, Values: []mmio.EnumValue{{Name: "TWO", Value: 2}}}}
}

type data struct {
	mmio.Union32
}

func (data) Views() []mmio.ViewInfo {
	return []mmio.ViewInfo{
		{Name: "WORD", Access: mmio.ReadWrite},
		{Name: "LOW", Access: mmio.WriteOnly, Fields: []mmio.FieldInfo{{Name: "LL", Field: 8<<8 | 0}}},
	}
}

type channel struct {
	CSR mmio.RW32[ctrl]   `offset:"0x0"`
	VAL mmio.RO32[uint32] `offset:"0x4"`
	_   [8]byte
}

type device struct {
	CTRL    mmio.RW32[ctrl]   `offset:"0x0" desc:"control"`
	STATUS  mmio.RO16[uint16] `offset:"0x4"`
	_       [1]byte
	SET     mmio.WO8[uint8] `offset:"0x7"`
	DATA    data            `offset:"0x8"`
	_       [4]byte
	CHANNEL [2]channel         `offset:"0x10"`
	PRIO    [4]mmio.RW8[uint8] `offset:"0x30"`
}

func TestFromStruct(t *testing.T) {
	b, err := FromStruct("DEV", reflect.TypeOf(device{}), 0x34)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		name   string
		kind   Kind
		offset uint32
		span   uint32
	}{
		{"CTRL", KindRegister, 0x0, 4},
		{"STATUS", KindRegister, 0x4, 2},
		{"_", KindReserved, 0x6, 1},
		{"SET", KindRegister, 0x7, 1},
		{"DATA", KindUnion, 0x8, 4},
		{"_", KindReserved, 0xC, 4},
		{"CHANNEL", KindCluster, 0x10, 0x20},
		{"PRIO", KindRegister, 0x30, 4},
	}
	if len(b.Slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(b.Slots), len(want))
	}
	for i, w := range want {
		s := b.Slots[i]
		if s.Name != w.name || s.Kind != w.kind || s.Offset != w.offset || s.Span() != w.span {
			t.Errorf("slot %d = %s %v %#x span %#x, want %s %v %#x span %#x",
				i, s.Name, s.Kind, s.Offset, s.Span(), w.name, w.kind, w.offset, w.span)
		}
	}

	ctrlSlot, ok := b.Lookup("CTRL")
	if !ok {
		t.Fatal("CTRL not found")
	}
	if ctrlSlot.Access != mmio.ReadWrite || ctrlSlot.Bits != 32 || len(ctrlSlot.Fields) != 2 {
		t.Errorf("CTRL = %v %d bits %d fields", ctrlSlot.Access, ctrlSlot.Bits, len(ctrlSlot.Fields))
	}
	if ctrlSlot.Description != "control" {
		t.Errorf("CTRL description = %q", ctrlSlot.Description)
	}
	if set, _ := b.Lookup("SET"); set.Access != mmio.WriteOnly {
		t.Errorf("SET access = %v", set.Access)
	}
	if d, _ := b.Lookup("DATA"); d.Access != mmio.ReadWrite || len(d.Views) != 2 {
		t.Errorf("DATA = %v with %d views", d.Access, len(d.Views))
	}
	if ch, _ := b.Lookup("CHANNEL"); ch.Count != 2 || ch.Stride != 0x10 || ch.Cluster.Size != 0x10 {
		t.Errorf("CHANNEL count %d stride %#x", ch.Count, ch.Stride)
	}
}

func TestFromStructSizeMismatch(t *testing.T) {
	_, err := FromStruct("DEV", reflect.TypeOf(device{}), 0x38)
	if !errors.Is(err, ErrBlockSize) {
		t.Fatalf("got %v, want ErrBlockSize", err)
	}
}

type wrongOffset struct {
	A mmio.RW32[uint32] `offset:"0x0"`
	B mmio.RW32[uint32] `offset:"0x8"`
}

type missingOffset struct {
	A mmio.RW32[uint32]
}

type notARegister struct {
	A uint32 `offset:"0x0"`
}

type implicitPadding struct {
	A mmio.RW8[uint8]   `offset:"0x0"`
	B mmio.RW32[uint32] `offset:"0x4"`
}

type overlappingFields struct {
	A mmio.RW32[badCtrl] `offset:"0x0"`
}

type fieldTooWide struct {
	A mmio.RW8[wideField] `offset:"0x0"`
}

type enumTooWide struct {
	A mmio.RW16[badEnum] `offset:"0x0"`
}

func TestFromStructErrors(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		size uint32
		err  error
	}{
		{"wrong offset", reflect.TypeOf(wrongOffset{}), 8, ErrOffsetMismatch},
		{"missing offset", reflect.TypeOf(missingOffset{}), 4, ErrMissingOffset},
		{"not a register", reflect.TypeOf(notARegister{}), 4, ErrUnsupportedSlot},
		{"implicit padding", reflect.TypeOf(implicitPadding{}), 8, ErrOffsetMismatch},
		{"overlapping fields", reflect.TypeOf(overlappingFields{}), 4, ErrFieldOverlap},
		{"field too wide", reflect.TypeOf(fieldTooWide{}), 1, ErrFieldRange},
		{"enum too wide", reflect.TypeOf(enumTooWide{}), 2, ErrEnumRange},
		{"not a struct", reflect.TypeOf(uint32(0)), 4, ErrUnsupportedSlot},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromStruct(tt.name, tt.typ, tt.size)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestMustFromStructPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustFromStruct("BAD", reflect.TypeOf(wrongOffset{}), 8)
}

func TestValidate(t *testing.T) {
	reg := func(name string, offset uint32, bits uint) Slot {
		return Slot{Name: name, Kind: KindRegister, Offset: offset, Bits: bits, Access: mmio.ReadWrite}
	}
	tests := []struct {
		name  string
		block Block
		err   error
	}{
		{"valid", Block{Name: "B", Size: 8, Slots: []Slot{reg("A", 0, 32), reg("B", 4, 16), reg("C", 6, 8), reg("D", 7, 8)}}, nil},
		{"gap", Block{Name: "B", Size: 8, Slots: []Slot{reg("A", 0, 32), reg("B", 6, 16)}}, ErrOffsetMismatch},
		{"overlap", Block{Name: "B", Size: 6, Slots: []Slot{reg("A", 0, 32), reg("B", 2, 16)}}, ErrOffsetMismatch},
		{"packed bytes", Block{Name: "B", Size: 6, Slots: []Slot{reg("A", 0, 8), reg("B", 1, 8), reg("C", 2, 8), reg("D", 3, 8), reg("E", 4, 16)}}, nil},
		{"misaligned word", Block{Name: "B", Size: 6, Slots: []Slot{reg("A", 0, 16), reg("B", 2, 32)}}, ErrMisaligned},
		{"invalid width", Block{Name: "B", Size: 8, Slots: []Slot{{Name: "A", Kind: KindRegister, Bits: 64}}}, ErrInvalidWidth},
		{"short", Block{Name: "B", Size: 8, Slots: []Slot{reg("A", 0, 32)}}, ErrBlockSize},
		{"stride", Block{Name: "B", Size: 4, Slots: []Slot{{Name: "A", Kind: KindRegister, Bits: 32, Count: 2, Stride: 2}}}, ErrClusterStride},
		{"view overlap", Block{Name: "B", Size: 4, Slots: []Slot{{
			Name: "U", Kind: KindUnion, Bits: 32,
			Views: []mmio.ViewInfo{
				{Name: "X", Fields: []mmio.FieldInfo{{Name: "P", Field: 8<<8 | 0}, {Name: "Q", Field: 8<<8 | 8}}},
				{Name: "Y", Fields: []mmio.FieldInfo{{Name: "R", Field: 4<<8 | 4}, {Name: "S", Field: 4<<8 | 6}}},
			},
		}}}, ErrFieldOverlap},
		{"narrow view", Block{Name: "B", Size: 4, Slots: []Slot{{
			Name: "U", Kind: KindUnion, Bits: 32,
			Views: []mmio.ViewInfo{{Name: "H", Offset: 2, Bits: 16, Fields: []mmio.FieldInfo{{Name: "F", Field: 16<<8 | 0}}}},
		}}}, nil},
		{"narrow view past union", Block{Name: "B", Size: 2, Slots: []Slot{{
			Name: "U", Kind: KindUnion, Bits: 16,
			Views: []mmio.ViewInfo{{Name: "B", Offset: 2, Bits: 8}},
		}}}, ErrFieldRange},
		{"narrow view misaligned", Block{Name: "B", Size: 4, Slots: []Slot{{
			Name: "U", Kind: KindUnion, Bits: 32,
			Views: []mmio.ViewInfo{{Name: "H", Offset: 1, Bits: 16}},
		}}}, ErrMisaligned},
		{"narrow view field too wide", Block{Name: "B", Size: 4, Slots: []Slot{{
			Name: "U", Kind: KindUnion, Bits: 32,
			Views: []mmio.ViewInfo{{Name: "L", Bits: 8, Fields: []mmio.FieldInfo{{Name: "F", Field: 4<<8 | 6}}}},
		}}}, ErrFieldRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.err == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestValidateViewsMayOverlapEachOther(t *testing.T) {
	b := Block{Name: "B", Size: 4, Slots: []Slot{{
		Name: "U", Kind: KindUnion, Bits: 32,
		Views: []mmio.ViewInfo{
			{Name: "X", Fields: []mmio.FieldInfo{{Name: "P", Field: 16<<8 | 0}}},
			{Name: "Y", Fields: []mmio.FieldInfo{{Name: "Q", Field: 8<<8 | 4}}},
		},
	}}}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	b := Block{Name: "B", Size: 16, Slots: []Slot{
		{Name: "A", Kind: KindRegister, Offset: 0, Bits: 24},
		{Name: "B", Kind: KindRegister, Offset: 8, Bits: 32},
	}}
	err := b.Validate()
	for _, want := range []error{ErrInvalidWidth, ErrOffsetMismatch, ErrBlockSize} {
		if !errors.Is(err, want) {
			t.Errorf("missing %v in %v", want, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	slots := []Slot{
		{Name: "C", Kind: KindRegister, Offset: 0x10, Bits: 32},
		{Name: "A", Kind: KindRegister, Offset: 0x0, Bits: 32},
		{Name: "B", Kind: KindRegister, Offset: 0x6, Bits: 16},
	}
	out, err := Normalize(slots, 0x20)
	if err != nil {
		t.Fatal(err)
	}

	want := []struct {
		name   string
		offset uint32
		span   uint32
	}{
		{"A", 0x0, 4},
		{"_", 0x4, 2},
		{"B", 0x6, 2},
		{"_", 0x8, 8},
		{"C", 0x10, 4},
		{"_", 0x14, 0xC},
	}
	if len(out) != len(want) {
		t.Fatalf("got %d slots, want %d", len(out), len(want))
	}
	for i, w := range want {
		if out[i].Name != w.name || out[i].Offset != w.offset || out[i].Span() != w.span {
			t.Errorf("slot %d = %s %#x span %#x, want %s %#x span %#x", i, out[i].Name, out[i].Offset, out[i].Span(), w.name, w.offset, w.span)
		}
	}

	b := Block{Name: "N", Size: 0x20, Slots: out}
	if err := b.Validate(); err != nil {
		t.Fatal(err)
	}
	if slots[0].Name != "C" {
		t.Error("Normalize reordered its input")
	}
}

func TestNormalizeErrors(t *testing.T) {
	overlap := []Slot{
		{Name: "A", Kind: KindRegister, Offset: 0x0, Bits: 32},
		{Name: "B", Kind: KindRegister, Offset: 0x2, Bits: 16},
	}
	if _, err := Normalize(overlap, 8); !errors.Is(err, ErrOffsetMismatch) {
		t.Errorf("overlap: got %v", err)
	}
	past := []Slot{{Name: "A", Kind: KindRegister, Offset: 0x4, Bits: 32}}
	if _, err := Normalize(past, 4); !errors.Is(err, ErrBlockSize) {
		t.Errorf("past end: got %v", err)
	}
}

func TestWalk(t *testing.T) {
	b := MustFromStruct("DEV", reflect.TypeOf(device{}), 0x34)

	type entry struct {
		path   string
		offset uint32
	}
	var got []entry
	b.Walk(func(path string, offset uint32, s Slot) {
		got = append(got, entry{path, offset})
	})

	want := []entry{
		{"CTRL", 0x0},
		{"STATUS", 0x4},
		{"SET", 0x7},
		{"DATA", 0x8},
		{"CHANNEL[0].CSR", 0x10},
		{"CHANNEL[0].VAL", 0x14},
		{"CHANNEL[1].CSR", 0x20},
		{"CHANNEL[1].VAL", 0x24},
		{"PRIO[0]", 0x30},
		{"PRIO[1]", 0x31},
		{"PRIO[2]", 0x32},
		{"PRIO[3]", 0x33},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Walk = %v, want %v", got, want)
	}
}

func TestKindString(t *testing.T) {
	if KindUnion.String() != "union" || Kind(9).String() != "Kind(9)" {
		t.Error("unexpected Kind strings")
	}
}
