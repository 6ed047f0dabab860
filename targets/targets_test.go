package targets

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"

	"omibyte.io/vega/chip/rv32m1"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		find    func(string) (TargetInfo, error)
		arg     string
		series  string
		wantErr error
	}{
		{"series", All().FindBySeries, "RV32M1", "rv32m1", nil},
		{"chip", All().FindByChip, "rv32m1_zero_riscy", "rv32m1", nil},
		{"unknown series", All().FindBySeries, "samd21", "", ErrSeriesNotFound},
		{"unknown chip", All().FindByChip, "atsamd21g18a", "", ErrChipNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.find(tt.arg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if info.Series != tt.series {
				t.Errorf("series = %q, want %q", info.Series, tt.series)
			}
		})
	}
}

func TestFormatFeatureString(t *testing.T) {
	info := TargetInfo{Features: []string{"m", "c"}}
	if got := info.FormatFeatureString(); got != "+m,+c" {
		t.Errorf("FormatFeatureString() = %q", got)
	}
}

func TestMatchesRegistry(t *testing.T) {
	info, err := All().FindByChip("rv32m1")
	if err != nil {
		t.Fatal(err)
	}
	if info.IRQCount != rv32m1.IRQ_COUNT || rv32m1.Vectors.DeviceCount() != info.IRQCount {
		t.Errorf("irqCount = %d, chip has %d", info.IRQCount, rv32m1.Vectors.DeviceCount())
	}

	var types []string
	for _, typ := range rv32m1.Registry.Types() {
		types = append(types, typ.Name)
		if got, want := len(typ.Instances), info.Peripherals[typ.Name]; got != want {
			t.Errorf("%s has %d instances, target lists %d", typ.Name, got, want)
		}
	}
	slices.Sort(types)
	if !slices.Equal(types, info.PeripheralTypes()) {
		t.Errorf("registry types %v, target types %v", types, info.PeripheralTypes())
	}
}
