package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"omibyte.io/vega/chip/rv32m1"
	"omibyte.io/vega/cmd/regmap-gen/model"
	"omibyte.io/vega/cmd/regmap-gen/svd"
	"omibyte.io/vega/periph"
	"omibyte.io/vega/targets"
)

// builtin holds the register maps compiled into this module, by chip.
var builtin = map[string]*periph.Registry{
	"rv32m1": rv32m1.Registry,
}

// load returns the registry named by arg: an SVD file, or a chip whose
// register map is compiled in. It also returns the target of a compiled
// in chip.
func load(arg string) (*periph.Registry, *targets.TargetInfo, error) {
	if strings.EqualFold(filepath.Ext(arg), ".svd") {
		device, err := svd.Open(arg)
		if err != nil {
			return nil, nil, err
		}
		d, err := model.Build(device)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", arg, err)
		}
		r, err := d.Registry()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", arg, err)
		}
		return r, nil, nil
	}

	target, err := targets.All().FindByChip(arg)
	if err != nil {
		return nil, nil, err
	}
	r, ok := builtin[target.Series]
	if !ok {
		return nil, nil, fmt.Errorf("%s has no compiled in register map", target.Series)
	}
	return r, &target, nil
}

// verify checks every block of r and, for a compiled in chip, the
// instance and vector counts and the flash region listed for its target.
func verify(r *periph.Registry, target *targets.TargetInfo) error {
	var errs []error
	for _, t := range r.Types() {
		if err := t.Block.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if target == nil {
		return errors.Join(errs...)
	}

	if n := r.Vectors().DeviceCount(); n != target.IRQCount {
		errs = append(errs, fmt.Errorf("%s has %d device vectors, target lists %d", target.Series, n, target.IRQCount))
	}
	for _, name := range target.PeripheralTypes() {
		if got, want := len(r.Instances(name)), target.Peripherals[name]; got != want {
			errs = append(errs, fmt.Errorf("%s has %d %s instances, target lists %d", target.Series, got, name, want))
		}
	}
	for _, t := range r.Types() {
		if _, ok := target.Peripherals[t.Name]; !ok {
			errs = append(errs, fmt.Errorf("%s type %s is not listed for the target", target.Series, t.Name))
		}
	}
	errs = append(errs, verifyFlash(r, target)...)
	return errors.Join(errs...)
}

// verifyFlash checks that the program flash of target is a whole number of
// sectors and that no peripheral block of r lies inside it.
func verifyFlash(r *periph.Registry, target *targets.TargetInfo) (errs []error) {
	flash := target.Flash
	if flash.Size == 0 || flash.SectorSize == 0 || flash.Origin%flash.SectorSize != 0 || flash.Size%flash.SectorSize != 0 {
		errs = append(errs, fmt.Errorf("%s flash %#x+%#x is not a whole number of %d byte sectors",
			target.Series, flash.Origin, flash.Size, flash.SectorSize))
	}
	lo, hi := uint64(flash.Origin), uint64(flash.Origin)+uint64(flash.Size)
	for _, t := range r.Types() {
		for _, inst := range append(t.Instances, t.Aliases...) {
			base := uint64(inst.Base)
			if base < hi && lo < base+uint64(t.Block.Size) {
				errs = append(errs, fmt.Errorf("%s %s at %#x lies in flash %#x+%#x",
					target.Series, inst.Name, inst.Base, flash.Origin, flash.Size))
			}
		}
	}
	return errs
}

// describe returns a one line summary of the core and flash of target.
func describe(target *targets.TargetInfo) string {
	s := fmt.Sprintf("%s core, cpu %s, %s", target.Core, target.Cpu, target.Triple)
	if features := target.FormatFeatureString(); features != "" {
		s += " " + features
	}
	s += fmt.Sprintf(", flash %#x+%#x", target.Flash.Origin, target.Flash.Size)
	if len(target.Tags) > 0 {
		s += ", tags " + strings.Join(target.Tags, ",")
	}
	return s
}
