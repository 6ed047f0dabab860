package periph

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"unsafe"

	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

type timer struct {
	CTRL mmio.RW32[uint32] `offset:"0x0"`
	CNT  mmio.RO32[uint32] `offset:"0x4"`
	_    [8]byte
}

var timerBlock = layout.MustFromStruct("TMR", reflect.TypeOf(timer{}), 0x10)

var portBlock = &layout.Block{Name: "PORT", Size: 4, Slots: []layout.Slot{
	{Name: "PCR", Kind: layout.KindRegister, Bits: 32, Access: mmio.ReadWrite},
}}

var vectors = irq.MustTable(
	[]irq.Vector{{IRQ: -1, Name: "Fault"}},
	[]irq.Vector{
		{IRQ: 0, Name: "TMR0"},
		{IRQ: 1, Name: "TMR1"},
		{IRQ: 3, Name: "PORTAB"},
	},
	4,
)

const X = 0x40030000

func testTypes() []Type {
	return []Type{
		{
			Name:  "TMR",
			Block: timerBlock,
			Instances: []Instance{
				{Name: "TMR1", Base: X + 0x1000, IRQs: []irq.IRQ{1}},
				{Name: "TMR0", Base: X, IRQs: []irq.IRQ{0}},
			},
		},
		{
			Name:  "PORT",
			Block: portBlock,
			Instances: []Instance{
				{Name: "PORTA", Base: 0x40046000, IRQs: []irq.IRQ{3}},
				{Name: "PORTB", Base: 0x40047000, IRQs: []irq.IRQ{3}},
				{Name: "PORTA_MIRROR", Base: 0x40046000, AliasOf: "PORTA"},
			},
		},
	}
}

func TestInstancesAscending(t *testing.T) {
	r, err := NewRegistry(vectors, testTypes()...)
	if err != nil {
		t.Fatal(err)
	}

	instances := r.Instances("TMR")
	if len(instances) != 2 {
		t.Fatalf("got %d instances, want 2", len(instances))
	}
	if instances[0].Name != "TMR0" || instances[0].Base != X || instances[1].Base != X+0x1000 {
		t.Errorf("instances = %+v", instances)
	}

	tests := []struct {
		index int
		addr  uintptr
		irqs  []irq.IRQ
		err   error
	}{
		{0, X, []irq.IRQ{0}, nil},
		{1, X + 0x1000, []irq.IRQ{1}, nil},
		{2, 0, nil, ErrIndexRange},
		{-1, 0, nil, ErrIndexRange},
	}
	for _, tt := range tests {
		addr, err := r.AddressOf("TMR", tt.index)
		if !errors.Is(err, tt.err) || addr != tt.addr {
			t.Errorf("AddressOf(TMR, %d) = %#x, %v", tt.index, addr, err)
		}
		irqs, err := r.IRQsOf("TMR", tt.index)
		if !errors.Is(err, tt.err) || !reflect.DeepEqual(irqs, tt.irqs) {
			t.Errorf("IRQsOf(TMR, %d) = %v, %v", tt.index, irqs, err)
		}
	}

	if _, err := r.AddressOf("ADC", 0); !errors.Is(err, ErrUnknownType) {
		t.Errorf("AddressOf(ADC, 0) error = %v", err)
	}
	if r.Instances("ADC") != nil {
		t.Error("instances of unknown type")
	}
}

func TestSharedVector(t *testing.T) {
	r := MustRegistry(vectors, testTypes()...)

	refs := r.ServicedBy(3)
	if len(refs) != 2 || refs[0].Name != "PORTA" || refs[1].Name != "PORTB" {
		t.Fatalf("ServicedBy(3) = %+v", refs)
	}
	for i, ref := range refs {
		if ref.Type != "PORT" || ref.Index != i {
			t.Errorf("ref %d = %s[%d]", i, ref.Type, ref.Index)
		}
	}
	if refs := r.ServicedBy(2); len(refs) != 0 {
		t.Errorf("placeholder vector serviced by %+v", refs)
	}
}

func TestAliasesTakeNoIndex(t *testing.T) {
	types := testTypes()
	types[1].Aliases = []Instance{{Name: "PORTB_MIRROR", Base: 0x40047000, IRQs: []irq.IRQ{3}, AliasOf: "PORTB"}}
	r := MustRegistry(vectors, types...)

	instances := r.Instances("PORT")
	if len(instances) != 2 || instances[0].Name != "PORTA" || instances[1].Name != "PORTB" {
		t.Fatalf("Instances(PORT) = %+v", instances)
	}
	if addr, err := r.AddressOf("PORT", 1); err != nil || addr != 0x40047000 {
		t.Errorf("AddressOf(PORT, 1) = %#x, %v", addr, err)
	}
	if _, err := r.AddressOf("PORT", 2); !errors.Is(err, ErrIndexRange) {
		t.Errorf("AddressOf(PORT, 2) error = %v", err)
	}

	aliases := r.Aliases("PORT")
	if len(aliases) != 2 || aliases[0].Name != "PORTA_MIRROR" || aliases[1].Name != "PORTB_MIRROR" {
		t.Errorf("Aliases(PORT) = %+v", aliases)
	}
	ref, ok := r.Lookup("PORTA_MIRROR")
	if !ok || ref.Type != "PORT" || ref.Index != -1 || ref.AliasOf != "PORTA" {
		t.Errorf("Lookup(PORTA_MIRROR) = %+v, %v", ref, ok)
	}

	refs := r.ServicedBy(3)
	if len(refs) != 3 || refs[2].Name != "PORTB_MIRROR" || refs[2].Index != -1 {
		t.Errorf("ServicedBy(3) = %+v", refs)
	}
}

func TestRegistryIsImmutable(t *testing.T) {
	types := testTypes()
	r := MustRegistry(vectors, types...)

	types[0].Instances[1].Base = 0
	irqs, _ := r.IRQsOf("TMR", 0)
	irqs[0] = 99

	if addr, _ := r.AddressOf("TMR", 0); addr != X {
		t.Errorf("AddressOf changed to %#x", addr)
	}
	if irqs, _ := r.IRQsOf("TMR", 0); irqs[0] != 0 {
		t.Errorf("IRQsOf changed to %v", irqs)
	}
	r.Types()[0].Instances[0].Name = "changed"
	if ref, _ := r.Lookup("TMR0"); ref.Name != "TMR0" {
		t.Error("Types returned shared storage")
	}
}

func TestConcurrentReaders(t *testing.T) {
	r := MustRegistry(vectors, testTypes()...)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if addr, err := r.AddressOf("TMR", j%2); err != nil || addr == 0 {
					t.Errorf("AddressOf = %#x, %v", addr, err)
				}
				r.ServicedBy(3)
			}
		}()
	}
	wg.Wait()
}

func TestNewRegistryErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func([]Type) []Type
		err    error
	}{
		{"duplicate type", func(ts []Type) []Type { return append(ts, ts[0]) }, ErrDuplicateType},
		{"duplicate instance", func(ts []Type) []Type {
			ts[1].Instances[1].Name = "PORTA"
			return ts
		}, ErrDuplicateInstance},
		{"duplicate base", func(ts []Type) []Type {
			ts[1].Instances[1].Base = X
			return ts
		}, ErrDuplicateBase},
		{"overlap", func(ts []Type) []Type {
			ts[0].Instances[0].Base = X + 0x8
			return ts
		}, ErrOverlap},
		{"unknown alias", func(ts []Type) []Type {
			ts[1].Instances[2].AliasOf = "PORTZ"
			return ts
		}, ErrUnknownAlias},
		{"alias of an alias", func(ts []Type) []Type {
			ts[1].Aliases = []Instance{{Name: "PORTA_MIRROR2", Base: 0x40046000, AliasOf: "PORTA_MIRROR"}}
			return ts
		}, ErrUnknownAlias},
		{"alias overlaps another instance", func(ts []Type) []Type {
			ts[1].Instances[2].Base = X + 0x1008
			ts[1].Instances[2].AliasOf = "PORTB"
			return ts
		}, ErrOverlap},
		{"alias shares base with another instance", func(ts []Type) []Type {
			ts[1].Instances[2].Base = 0x40047000
			return ts
		}, ErrDuplicateBase},
		{"alias without target shares base", func(ts []Type) []Type {
			ts[1].Instances[2].AliasOf = ""
			return ts
		}, ErrDuplicateBase},
		{"placeholder vector", func(ts []Type) []Type {
			ts[0].Instances[0].IRQs = []irq.IRQ{2}
			return ts
		}, ErrUnknownIRQ},
		{"vector out of range", func(ts []Type) []Type {
			ts[0].Instances[0].IRQs = []irq.IRQ{irq.NotAvail}
			return ts
		}, ErrUnknownIRQ},
		{"no layout", func(ts []Type) []Type {
			ts[0].Block = nil
			return ts
		}, ErrNoLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(vectors, tt.modify(testTypes())...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestMustRegistryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	types := testTypes()
	types[0].Instances[0].Base = X
	MustRegistry(vectors, types...)
}

func TestAt(t *testing.T) {
	var tmr timer
	base := uintptr(unsafe.Pointer(&tmr))
	h := At[timer](base)
	h.CTRL.Store(0x5)
	if tmr.CTRL.Load() != 0x5 {
		t.Error("overlay does not alias the memory at base")
	}
	if h.CNT.Addr() != base+4 {
		t.Errorf("CNT at %#x, want %#x", h.CNT.Addr(), base+4)
	}
}

func TestHandles(t *testing.T) {
	r := MustRegistry(vectors, testTypes()...)

	handles, err := Handles[timer](r, "TMR")
	if err != nil {
		t.Fatal(err)
	}
	if len(handles) != 2 || uintptr(unsafe.Pointer(handles[1])) != X+0x1000 {
		t.Errorf("handles = %v", handles)
	}

	if _, err := Handles[uint64](r, "TMR"); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("mismatched overlay error = %v", err)
	}
	if _, err := Handles[timer](r, "ADC"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("unknown type error = %v", err)
	}
}
