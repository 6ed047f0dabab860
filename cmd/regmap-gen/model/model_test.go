package model

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"omibyte.io/vega/cmd/regmap-gen/svd"
	"omibyte.io/vega/irq"
	"omibyte.io/vega/layout"
	"omibyte.io/vega/mmio"
)

func sample(t *testing.T) *Device {
	t.Helper()
	dev, err := svd.Open("../testdata/sample.svd")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Build(dev)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBuildTypes(t *testing.T) {
	d := sample(t)
	var names []string
	for _, typ := range d.Types {
		names = append(names, typ.Name)
	}
	if want := []string{"TMR", "GPIO", "FGPIO"}; !slices.Equal(names, want) {
		t.Fatalf("types = %v, want %v", names, want)
	}

	tmr := d.Types[0]
	if len(tmr.Instances) != 2 || tmr.Instances[1].Name != "TMR1" || tmr.Instances[1].Base != 0x40002000 {
		t.Errorf("TMR instances = %+v", tmr.Instances)
	}
	if tmr.Block.Size != 0x40 || tmr.Description != "Timer" {
		t.Errorf("TMR block size %#x description %q", tmr.Block.Size, tmr.Description)
	}
	if len(tmr.Aliases) != 1 || tmr.Aliases[0].Name != "TMR0_ALIAS" || tmr.Aliases[0].AliasOf != "TMR0" {
		t.Errorf("TMR aliases = %+v", tmr.Aliases)
	}
	fgpio := d.Types[2]
	if len(fgpio.Instances) != 1 || fgpio.Instances[0].Base != 0xF8000000 || fgpio.Block.Size != 8 {
		t.Errorf("FGPIO = %+v size %#x", fgpio.Instances, fgpio.Block.Size)
	}
}

func TestBuildSlots(t *testing.T) {
	block := sample(t).Types[0].Block

	tests := []struct {
		name   string
		kind   layout.Kind
		offset uint32
		count  uint32
		stride uint32
		access mmio.Access
	}{
		{"CTRL", layout.KindRegister, 0x0, 0, 0, mmio.ReadWrite},
		{"STAT", layout.KindRegister, 0x4, 0, 0, mmio.ReadOnly},
		{"CH", layout.KindCluster, 0x10, 2, 8, 0},
		{"MATCHA", layout.KindRegister, 0x20, 0, 0, mmio.ReadWrite},
		{"MATCHB", layout.KindRegister, 0x24, 0, 0, mmio.ReadWrite},
		{"FIFO", layout.KindRegister, 0x28, 4, 1, mmio.WriteOnly},
		{"MODE", layout.KindUnion, 0x2C, 0, 0, mmio.ReadWrite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := block.Lookup(tt.name)
			if !ok {
				t.Fatalf("%s not found", tt.name)
			}
			if s.Kind != tt.kind || s.Offset != tt.offset || s.Count != tt.count || s.Stride != tt.stride || s.Access != tt.access {
				t.Errorf("%s = %v at %#x count %d stride %d %v", tt.name, s.Kind, s.Offset, s.Count, s.Stride, s.Access)
			}
		})
	}

	ctrl, _ := block.Lookup("CTRL")
	if len(ctrl.Fields) != 2 || ctrl.Fields[1].Field != mmio.Field(3<<8|1) || ctrl.Fields[1].Values[2].Value != 2 {
		t.Errorf("CTRL fields = %+v", ctrl.Fields)
	}

	mode, _ := block.Lookup("MODE")
	if len(mode.Views) != 2 || mode.Views[1].Name != "MODE_LOW" || mode.Views[1].Bits != 16 || mode.Views[0].Bits != 0 {
		t.Errorf("MODE views = %+v", mode.Views)
	}

	gap := block.Slots[3]
	if gap.Kind != layout.KindReserved || gap.Offset != 0xA || gap.Size != 6 {
		t.Errorf("slot after CNT = %+v", gap)
	}
	if tail := block.Slots[len(block.Slots)-1]; tail.Kind != layout.KindReserved || tail.Offset != 0x30 || tail.Size != 0x10 {
		t.Errorf("tail = %+v", tail)
	}

	offsets := map[string]uint32{}
	block.Walk(func(path string, offset uint32, _ layout.Slot) {
		offsets[path] = offset
	})
	if offsets["CH[1].CV"] != 0x1C || offsets["FIFO[3]"] != 0x2B {
		t.Errorf("walk offsets = %v", offsets)
	}
}

func TestBuildRegistry(t *testing.T) {
	d := sample(t)
	if d.VectorCount != 8 || len(d.Vectors) != 3 {
		t.Fatalf("vectors = %v of %d", d.Vectors, d.VectorCount)
	}

	r, err := d.Registry()
	if err != nil {
		t.Fatal(err)
	}
	if addr, err := r.AddressOf("TMR", 1); err != nil || addr != 0x40002000 {
		t.Errorf("AddressOf(TMR, 1) = %#x, %v", addr, err)
	}
	irqs, err := r.IRQsOf("FGPIO", 0)
	if err != nil || !slices.Equal(irqs, []irq.IRQ{5}) {
		t.Errorf("IRQsOf(FGPIO, 0) = %v, %v", irqs, err)
	}
	if refs := r.ServicedBy(5); len(refs) != 2 {
		t.Errorf("ServicedBy(5) = %v", refs)
	}
	if n := len(r.Instances("TMR")); n != 2 {
		t.Errorf("TMR has %d indexed instances, want 2", n)
	}
	if ref, ok := r.Lookup("TMR0_ALIAS"); !ok || ref.Index != -1 || ref.Base != 0x40001000 {
		t.Errorf("Lookup(TMR0_ALIAS) = %+v, %v", ref, ok)
	}
	if v, _ := r.Vectors().Lookup(4); !v.IsReserved() {
		t.Errorf("vector 4 = %v, want a placeholder", v)
	}
}

func device(peripherals ...svd.PeripheralElement) *svd.DeviceElement {
	return &svd.DeviceElement{
		Name:          "TEST",
		RegisterSize:  32,
		DefaultAccess: "read-write",
		Peripherals:   svd.PeripheralsElement{Elements: peripherals},
	}
}

func registers(regs ...svd.RegisterElement) svd.RegistersElement {
	return svd.RegistersElement{RegisterElements: regs}
}

func TestBuildErrors(t *testing.T) {
	ctrl := svd.RegisterElement{Name: "CTRL"}
	tests := []struct {
		name   string
		device *svd.DeviceElement
		want   error
	}{
		{
			name: "duplicate peripheral",
			device: device(
				svd.PeripheralElement{Name: "A0", Registers: registers(ctrl)},
				svd.PeripheralElement{Name: "A0", BaseAddress: 0x100, Registers: registers(ctrl)},
			),
			want: ErrDuplicatePeripheral,
		},
		{
			name:   "unknown base",
			device: device(svd.PeripheralElement{Name: "A1", DerivedFrom: "A0"}),
			want:   ErrUnknownBase,
		},
		{
			name:   "derived from itself",
			device: device(svd.PeripheralElement{Name: "A0", DerivedFrom: "A0"}),
			want:   ErrDerivedCycle,
		},
		{
			name: "derived cycle",
			device: device(
				svd.PeripheralElement{Name: "A0", DerivedFrom: "B0"},
				svd.PeripheralElement{Name: "B0", DerivedFrom: "A0"},
			),
			want: ErrDerivedCycle,
		},
		{
			name: "undeclared overlap",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "X"},
				svd.RegisterElement{Name: "Y"},
			)}),
			want: ErrOverlap,
		},
		{
			name: "interrupt out of range",
			device: device(svd.PeripheralElement{
				Name:       "A0",
				Registers:  registers(ctrl),
				Interrupts: []svd.InterruptElement{{Name: "A0", Value: 0x8000}},
			}),
			want: ErrIRQRange,
		},
		{
			name: "array stride",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "FIFO[%s]", Count: 4, Increment: 2, Size: 8},
			)}),
			want: ErrDimStride,
		},
		{
			name: "dim without placeholder",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "FIFO", Count: 4, Increment: 4},
			)}),
			want: ErrDimName,
		},
		{
			name: "dimIndex count",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "M%s", Count: 3, Increment: 4, DimIndex: "A,B"},
			)}),
			want: ErrDimIndex,
		},
		{
			name: "unknown access",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "CTRL", Access: "sometimes"},
			)}),
			want: ErrAccess,
		},
		{
			name: "type conflict",
			device: device(
				svd.PeripheralElement{Name: "A0", Registers: registers(ctrl)},
				svd.PeripheralElement{Name: "A1", BaseAddress: 0x100, Registers: registers(ctrl, svd.RegisterElement{Name: "STAT", AddressOffset: 4})},
			),
			want: ErrTypeConflict,
		},
		{
			name: "misaligned register",
			device: device(svd.PeripheralElement{Name: "A0", Registers: registers(
				svd.RegisterElement{Name: "CTRL", AddressOffset: 2},
			)}),
			want: layout.ErrMisaligned,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.device)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseDimIndex(t *testing.T) {
	tests := []struct {
		in    string
		count int
		want  []string
	}{
		{"", 3, []string{"0", "1", "2"}},
		{"4-6", 3, []string{"4", "5", "6"}},
		{"A-D", 4, []string{"A", "B", "C", "D"}},
		{"LOW, HIGH", 2, []string{"LOW", "HIGH"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDimIndex(tt.in, tt.count)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseDimIndex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	tests := map[string]string{
		"LPUART0":          "LPUART",
		"TPM12":            "TPM",
		"RTC":              "RTC",
		"FTFE_FlashConfig": "FTFE_FlashConfig",
	}
	for in, want := range tests {
		if got := TypeName(in); got != want {
			t.Errorf("TypeName(%q) = %q, want %q", in, got, want)
		}
	}
}
