// Package targets describes the chips the register maps in this module
// cover: their cores, interrupt counts and how many instances of each
// peripheral type they carry.
package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrSeriesNotFound = errors.New("series not found")
	ErrChipNotFound   = errors.New("chip not found")
)

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series       string         `yaml:"series"`
	Chips        []string       `yaml:"chips"`
	ChipPackage  string         `yaml:"chipPackage"`
	Core         string         `yaml:"core"`
	Cpu          string         `yaml:"cpu"`
	Architecture string         `yaml:"architecture"`
	Triple       string         `yaml:"triple"`
	Tags         []string       `yaml:"tags"`
	Features     []string       `yaml:"features"`
	IRQCount     int            `yaml:"irqCount"`
	Peripherals  map[string]int `yaml:"peripherals"`
	Flash        FlashInfo      `yaml:"flash"`
}

type FlashInfo struct {
	Origin     uint32 `yaml:"origin"`
	Size       uint32 `yaml:"size"`
	SectorSize uint32 `yaml:"sectorSize"`
}

func (t TargetInfo) FormatFeatureString() string {
	features := make([]string, len(t.Features))
	for i, feature := range t.Features {
		features[i] = "+" + feature
	}
	return strings.Join(features, ",")
}

// PeripheralTypes returns the peripheral type names of the target in
// sorted order.
func (t TargetInfo) PeripheralTypes() []string {
	names := maps.Keys(t.Peripherals)
	slices.Sort(names)
	return names
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	for _, target := range t {
		if target.Series == strings.ToLower(name) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%s: %w", name, ErrSeriesNotFound)
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	for _, target := range t {
		if slices.Contains(target.Chips, strings.ToLower(name)) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%s: %w", name, ErrChipNotFound)
}

func init() {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(rawTargets, &t); err != nil {
		panic(err)
	}

	targets = t.Elements
}
