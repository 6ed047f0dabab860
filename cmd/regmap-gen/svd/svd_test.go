package svd

import (
	"strings"
	"testing"
)

func TestIntegerParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Integer
		wantErr bool
	}{
		{"42", 42, false},
		{" 0x4003F000 ", 0x4003F000, false},
		{"0XFF", 0xFF, false},
		{"#1010", 10, false},
		{"#1x1x", 10, false},
		{"0b11", 3, false},
		{"0x", 0, true},
		{"ten", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Integer
			err := got.parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parse(%q) = %#x, want %#x", tt.in, uint64(got), uint64(tt.want))
			}
		})
	}
}

func TestFieldBits(t *testing.T) {
	u := func(v Integer) *Integer { return &v }
	tests := []struct {
		name    string
		field   FieldElement
		offset  uint
		width   uint
		wantErr bool
	}{
		{"offset only", FieldElement{Name: "EN", BitOffset: u(3)}, 3, 1, false},
		{"offset width", FieldElement{Name: "PS", BitOffset: u(0), BitWidth: u(3)}, 0, 3, false},
		{"lsb msb", FieldElement{Name: "CMOD", Lsb: u(3), Msb: u(4)}, 3, 2, false},
		{"reversed lsb msb", FieldElement{Name: "X", Lsb: u(4), Msb: u(3)}, 0, 0, true},
		{"bit range", FieldElement{Name: "MUX", BitRange: "[10:8]"}, 8, 3, false},
		{"reversed bit range", FieldElement{Name: "X", BitRange: "[8:10]"}, 0, 0, true},
		{"no range", FieldElement{Name: "X"}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, width, err := tt.field.Bits()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Bits() error = %v, wantErr %v", err, tt.wantErr)
			}
			if offset != tt.offset || width != tt.width {
				t.Errorf("Bits() = %d, %d, want %d, %d", offset, width, tt.offset, tt.width)
			}
		})
	}
}

const device = `<?xml version="1.0" encoding="utf-8"?>
<device schemaVersion="1.3">
  <name>TEST</name>
  <cpu><name>other</name><deviceNumInterrupts>8</deviceNumInterrupts></cpu>
  <peripherals>
    <peripheral>
      <name>UART0</name>
      <baseAddress>0x40001000</baseAddress>
      <addressBlock><offset>0</offset><size>0x10</size><usage>registers</usage></addressBlock>
      <interrupt><name>UART0</name><value>3</value></interrupt>
      <registers>
        <register>
          <name>CTRL</name>
          <addressOffset>0x4</addressOffset>
          <size>16</size>
          <fields>
            <field><name>EN</name><bitOffset>0</bitOffset><bitWidth>1</bitWidth></field>
          </fields>
        </register>
      </registers>
    </peripheral>
    <peripheral derivedFrom="UART0">
      <name>UART1</name>
      <baseAddress>0x40002000</baseAddress>
    </peripheral>
  </peripherals>
</device>`

func TestDecode(t *testing.T) {
	dev, err := Decode(strings.NewReader(device))
	if err != nil {
		t.Fatal(err)
	}
	if dev.Name != "TEST" || dev.CPU.DeviceNumInterrupts != 8 {
		t.Errorf("device = %s with %d interrupts", dev.Name, dev.CPU.DeviceNumInterrupts)
	}
	if dev.RegisterSize != 32 || dev.AddressableWidth != 8 || dev.DefaultAccess != "read-write" {
		t.Errorf("defaults = %d, %d, %q", dev.RegisterSize, dev.AddressableWidth, dev.DefaultAccess)
	}

	i, ok := dev.Peripherals.Find("UART1")
	if !ok {
		t.Fatal("UART1 not found")
	}
	uart1 := dev.Peripherals.Elements[i]
	if uart1.DerivedFrom != "UART0" || uart1.BaseAddress != 0x40002000 {
		t.Errorf("UART1 = %+v", uart1)
	}

	uart0 := dev.Peripherals.Elements[0]
	if len(uart0.Registers.RegisterElements) != 1 {
		t.Fatalf("UART0 has %d registers", len(uart0.Registers.RegisterElements))
	}
	ctrl := uart0.Registers.RegisterElements[0]
	if ctrl.AddressOffset != 4 || ctrl.Size != 16 || len(ctrl.Fields.Elements) != 1 {
		t.Errorf("CTRL = %+v", ctrl)
	}
	if uart0.Interrupts[0].Value != 3 {
		t.Errorf("UART0 interrupt = %d", uart0.Interrupts[0].Value)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(strings.NewReader("<device><name>")); err == nil {
		t.Error("truncated document decoded")
	}
	if _, err := Decode(strings.NewReader("<device><width>wide</width></device>")); err == nil {
		t.Error("bad integer decoded")
	}
}
