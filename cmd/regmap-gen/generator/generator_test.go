package generator

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"omibyte.io/vega/cmd/regmap-gen/model"
	"omibyte.io/vega/cmd/regmap-gen/svd"
)

func generate(t *testing.T) Files {
	t.Helper()
	dev, err := svd.Open("../testdata/sample.svd")
	if err != nil {
		t.Fatal(err)
	}
	d, err := model.Build(dev)
	if err != nil {
		t.Fatal(err)
	}
	files, err := Generate(d, "sample")
	if err != nil {
		t.Fatal(err)
	}
	return files
}

// squash collapses runs of white space so checks do not depend on the
// column alignment gofmt chose.
func squash(src []byte) string {
	return strings.Join(strings.Fields(string(src)), " ")
}

func TestGenerateParses(t *testing.T) {
	files := generate(t)
	for _, name := range []string{"tmr.go", "gpio.go", "fgpio.go", "interrupts.go", "peripherals.go"} {
		src, ok := files[name]
		if !ok {
			t.Errorf("%s not generated", name)
			continue
		}
		f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if f.Name.Name != "sample" {
			t.Errorf("%s is package %s", name, f.Name.Name)
		}
	}
}

func TestGenerateContent(t *testing.T) {
	files := generate(t)
	tests := []struct {
		file string
		want string
	}{
		{"tmr.go", "CTRL mmio.RW32[TMR_CTRL] `offset:\"0x0\" desc:\"control\"`"},
		{"tmr.go", "STAT mmio.RO32[TMR_STAT]"},
		{"tmr.go", "CNT mmio.RW16[uint16] `offset:\"0x8\" desc:\"counter\"` _ [6]byte"},
		{"tmr.go", "CH [2]TMR_CH `offset:\"0x10\" desc:\"channel\"`"},
		{"tmr.go", "FIFO [4]mmio.WO8[uint8] `offset:\"0x28\""},
		{"tmr.go", "const TMR_SIZE = 0x40"},
		{"tmr.go", "TMR_CTRL_PS mmio.Field = 3<<8 | 1"},
		{"tmr.go", "TMR_CTRL_PS_DIV4 TMR_CTRL_PS_Value = 2"},
		{"tmr.go", "func (r TMR_CTRL) SetEN(v bool) TMR_CTRL { return TMR_CTRL(TMR_CTRL_EN.InsertBool(uint32(r), v)) }"},
		{"tmr.go", "func (r TMR_STAT) GetTOF() bool"},
		{"tmr.go", "func (u *TMR_MODE) MODE_LOW() *mmio.RO16[uint16] { return mmio.AsRO16[uint16](u.Half(0)) }"},
		{"tmr.go", "{Name: \"MODE_LOW\", Access: mmio.ReadOnly, Offset: 0, Bits: 16}"},
		{"tmr.go", "type TMR_CH struct { CSC mmio.RW32[TMR_CH_CSC]"},
		{"interrupts.go", "IRQ_TMR1 irq.IRQ = 3"},
		{"interrupts.go", "const IRQ_COUNT = 8"},
		{"peripherals.go", "FGPIO0_BASE = 0xF8000000"},
		{"peripherals.go", "TMR_BASE_PTRS = [2]*TMR_TYPE{TMR0, TMR1}"},
		{"peripherals.go", "FGPIO_IRQS = [1][]irq.IRQ{{IRQ_GPIO0}}"},
		{"peripherals.go", "{Name: \"FGPIO0\", Base: FGPIO0_BASE, IRQs: FGPIO_IRQS[0]},"},
		{"peripherals.go", "TMR0_ALIAS_BASE = 0x40001000"},
		{"peripherals.go", "TMR0_ALIAS = (*TMR_TYPE)(unsafe.Pointer(uintptr(TMR0_ALIAS_BASE)))"},
		{"peripherals.go", "}, Aliases: []periph.Instance{ {Name: \"TMR0_ALIAS\", Base: TMR0_ALIAS_BASE, AliasOf: \"TMR0\"}, }},"},
	}
	for _, tt := range tests {
		if got := squash(files[tt.file]); !strings.Contains(got, tt.want) {
			t.Errorf("%s does not contain %q", tt.file, tt.want)
		}
	}

	if strings.Contains(string(files["tmr.go"]), "SetTOF") {
		t.Error("read-only status register has a setter")
	}
	if strings.Contains(string(files["gpio.go"]), "\"unsafe\"") {
		t.Error("gpio.go imports unsafe without using it")
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sample")
	if err := generate(t).Write(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "peripherals.go")); err != nil {
		t.Error(err)
	}
}

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"CTRL":    "CTRL",
		"_CTRL_":  "CTRL",
		"ctrl":    "Ctrl",
		"1WIRE":   "X1WIRE",
		"FOO-BAR": "FOO",
		"%":       "X",
	}
	for in, want := range tests {
		if got := identifier(in); got != want {
			t.Errorf("identifier(%q) = %q, want %q", in, got, want)
		}
	}
}
