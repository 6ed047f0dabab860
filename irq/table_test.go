package irq

import (
	"errors"
	"testing"
)

var testCore = []Vector{
	{IRQ: -1, Name: "LoadStoreError"},
	{IRQ: -4, Name: "Reset"},
	{IRQ: -2, Name: "Ecall"},
}

func TestNewTable(t *testing.T) {
	device := []Vector{
		{IRQ: 0, Name: "DMA0"},
		{IRQ: 1, Name: "DMA1"},
		{IRQ: 4, Name: "UART0", Description: "LPUART0 status and error"},
	}
	table, err := NewTable(testCore, device, 6)
	if err != nil {
		t.Fatal(err)
	}

	if table.Len() != 9 || table.DeviceCount() != 6 {
		t.Fatalf("Len = %d, DeviceCount = %d", table.Len(), table.DeviceCount())
	}

	want := []Vector{
		{IRQ: -4, Name: "Reset"},
		{IRQ: -2, Name: "Ecall"},
		{IRQ: -1, Name: "LoadStoreError"},
		{IRQ: 0, Name: "DMA0"},
		{IRQ: 1, Name: "DMA1"},
		{IRQ: 2, Name: Reserved},
		{IRQ: 3, Name: Reserved},
		{IRQ: 4, Name: "UART0", Description: "LPUART0 status and error"},
		{IRQ: 5, Name: Reserved},
	}
	slots := table.Slots()
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	table := MustTable(testCore, []Vector{{IRQ: 1, Name: "TIMER"}}, 3)

	tests := []struct {
		irq      IRQ
		name     string
		ok       bool
		assigned bool
	}{
		{-4, "Reset", true, true},
		{-3, "", false, false},
		{-1, "LoadStoreError", true, true},
		{0, Reserved, true, false},
		{1, "TIMER", true, true},
		{2, Reserved, true, false},
		{3, "", false, false},
		{NotAvail, "", false, false},
	}
	for _, tt := range tests {
		v, ok := table.Lookup(tt.irq)
		if ok != tt.ok || v.Name != tt.name {
			t.Errorf("Lookup(%d) = %v, %v, want %q, %v", tt.irq, v, ok, tt.name, tt.ok)
		}
		if got := table.Assigned(tt.irq); got != tt.assigned {
			t.Errorf("Assigned(%d) = %v, want %v", tt.irq, got, tt.assigned)
		}
	}

	if v, ok := table.ByName("TIMER"); !ok || v.IRQ != 1 {
		t.Errorf("ByName(TIMER) = %v, %v", v, ok)
	}
	if v, ok := table.ByName("Reset"); !ok || v.IRQ != -4 {
		t.Errorf("ByName(Reset) = %v, %v", v, ok)
	}
	if _, ok := table.ByName(Reserved); ok {
		t.Error("placeholder found by name")
	}
}

func TestReservedMayRepeat(t *testing.T) {
	device := []Vector{
		{IRQ: 0, Name: "A"},
		{IRQ: 1, Name: Reserved},
		{IRQ: 2, Name: Reserved},
		{IRQ: 3, Name: "B"},
	}
	if _, err := NewTable(nil, device, 4); err != nil {
		t.Fatal(err)
	}
}

func TestNewTableErrors(t *testing.T) {
	tests := []struct {
		name   string
		core   []Vector
		device []Vector
		count  int
		err    error
	}{
		{"positive core", []Vector{{IRQ: 0, Name: "X"}}, nil, 1, ErrCoreNotNegative},
		{"core at sentinel", []Vector{{IRQ: NotAvail, Name: "X"}}, nil, 1, ErrCoreNotNegative},
		{"duplicate core", []Vector{{IRQ: -1, Name: "X"}, {IRQ: -1, Name: "Y"}}, nil, 1, ErrDuplicateNumber},
		{"past count", nil, []Vector{{IRQ: 4, Name: "X"}}, 4, ErrOutOfRange},
		{"negative device", nil, []Vector{{IRQ: -1, Name: "X"}}, 4, ErrOutOfRange},
		{"duplicate device", nil, []Vector{{IRQ: 1, Name: "X"}, {IRQ: 1, Name: "Y"}}, 4, ErrDuplicateNumber},
		{"duplicate name", nil, []Vector{{IRQ: 1, Name: "X"}, {IRQ: 2, Name: "X"}}, 4, ErrDuplicateName},
		{"name shared with core", []Vector{{IRQ: -1, Name: "X"}}, []Vector{{IRQ: 2, Name: "X"}}, 4, ErrDuplicateName},
		{"empty name", nil, []Vector{{IRQ: 1}}, 4, ErrEmptyName},
		{"negative count", nil, nil, -1, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.core, tt.device, tt.count)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
		})
	}
}

func TestNewTableDoesNotModifyInput(t *testing.T) {
	core := []Vector{{IRQ: -1, Name: "B"}, {IRQ: -2, Name: "A"}}
	MustTable(core, nil, 0)
	if core[0].Name != "B" {
		t.Error("core exceptions were reordered in place")
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustTable(nil, []Vector{{IRQ: 9, Name: "X"}}, 2)
}
