package main

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"omibyte.io/vega/targets"
)

func TestLoadBuiltin(t *testing.T) {
	r, target, err := load("rv32m1")
	if err != nil {
		t.Fatal(err)
	}
	if target == nil || target.Series != "rv32m1" {
		t.Fatalf("target = %v", target)
	}
	if err := verify(r, target); err != nil {
		t.Error(err)
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, _, err := load("atsamd21g18a"); !errors.Is(err, targets.ErrChipNotFound) {
		t.Errorf("load() error = %v, want %v", err, targets.ErrChipNotFound)
	}
	if _, _, err := load("testdata/missing.svd"); err == nil {
		t.Error("missing SVD file loaded")
	}
}

func TestVerifyCounts(t *testing.T) {
	r, target, err := load("rv32m1")
	if err != nil {
		t.Fatal(err)
	}
	wrong := *target
	wrong.IRQCount = 32
	wrong.Peripherals = map[string]int{"LPUART": 3}
	if err := verify(r, &wrong); err == nil {
		t.Error("verify accepted wrong counts")
	}
}

func TestVerifyFlash(t *testing.T) {
	r, target, err := load("rv32m1")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name  string
		flash targets.FlashInfo
		want  string
	}{
		{"catalog", target.Flash, ""},
		{"covers the flash configuration field", targets.FlashInfo{Origin: 0, Size: 0x100000, SectorSize: 4096}, "FTFE_FlashConfig at 0x400 lies in flash"},
		{"covers a peripheral block", targets.FlashInfo{Origin: 0x40001000, Size: 0x1000, SectorSize: 0x1000}, "MSCM at 0x40001000"},
		{"partial sector", targets.FlashInfo{Origin: 0x01000000, Size: 0x40100, SectorSize: 2048}, "whole number of 2048 byte sectors"},
		{"no sector size", targets.FlashInfo{Origin: 0x01000000, Size: 0x40000}, "whole number of 0 byte sectors"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrong := *target
			wrong.Flash = tt.flash
			err := verify(r, &wrong)
			if tt.want == "" {
				if err != nil {
					t.Error(err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("verify() error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	_, target, err := load("rv32m1_zero_riscy")
	if err != nil {
		t.Fatal(err)
	}
	want := "zero-riscy core, cpu generic-rv32, riscv32-unknown-none-elf +m,+c, flash 0x1000000+0x40000, tags rv32m1,riscv,zero_riscy"
	if got := describe(target); got != want {
		t.Errorf("describe() = %q\nwant %q", got, want)
	}
}

func TestDumpTarget(t *testing.T) {
	r, target, err := load("rv32m1")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dump(&buf, r, target, false); err != nil {
		t.Fatal(err)
	}
	var d dumpDevice
	if err := yaml.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	want := &dumpTarget{
		Series:       "rv32m1",
		Core:         "zero-riscy",
		Cpu:          "generic-rv32",
		Architecture: "riscv32",
		Triple:       "riscv32-unknown-none-elf",
		Features:     "+m,+c",
		Tags:         []string{"rv32m1", "riscv", "zero_riscy"},
		Flash:        dumpFlash{Origin: "0x01000000", Size: "0x40000", SectorSize: 2048},
	}
	if !reflect.DeepEqual(d.Target, want) {
		t.Errorf("target = %+v, want %+v", d.Target, want)
	}
	if len(d.Types) != len(r.Types()) {
		t.Errorf("dump has %d types, registry %d", len(d.Types), len(r.Types()))
	}
}

func TestDump(t *testing.T) {
	r, target, err := load("testdata/sample.svd")
	if err != nil {
		t.Fatal(err)
	}
	if target != nil {
		t.Errorf("SVD file has target %v", target)
	}
	if err := verify(r, nil); err != nil {
		t.Error(err)
	}

	var buf bytes.Buffer
	if err := dump(&buf, r, nil, false); err != nil {
		t.Fatal(err)
	}
	var d dumpDevice
	if err := yaml.Unmarshal(buf.Bytes(), &d); err != nil {
		t.Fatal(err)
	}
	if d.Target != nil {
		t.Errorf("SVD dump has target %+v", d.Target)
	}
	if len(d.Vectors) != 3 || d.Vectors[1].Name != "TMR1" {
		t.Errorf("vectors = %+v", d.Vectors)
	}
	if len(d.Types) != 3 || d.Types[0].Name != "TMR" || d.Types[0].Size != "0x40" {
		t.Fatalf("types = %+v", d.Types)
	}

	regs := map[string]dumpRegister{}
	for _, reg := range d.Types[0].Registers {
		regs[reg.Path] = reg
	}
	if reg := regs["CH[1].CV"]; reg.Offset != "0x1c" || reg.Access != "read-write" {
		t.Errorf("CH[1].CV = %+v", reg)
	}
	if reg := regs["MODE"]; len(reg.Views) != 2 {
		t.Errorf("MODE = %+v", reg)
	}
	if len(d.Types[0].Instances) != 2 || len(d.Types[0].Aliases) != 1 {
		t.Fatalf("TMR instances %+v aliases %+v", d.Types[0].Instances, d.Types[0].Aliases)
	}
	if alias := d.Types[0].Aliases[0]; alias.AliasOf != "TMR0" || alias.Base != "0x40001000" {
		t.Errorf("TMR0_ALIAS = %+v", alias)
	}

	buf.Reset()
	if err := dump(&buf, r, nil, true); err != nil {
		t.Fatal(err)
	}
	var all dumpDevice
	if err := yaml.Unmarshal(buf.Bytes(), &all); err != nil {
		t.Fatal(err)
	}
	if len(all.Vectors) != 8 {
		t.Errorf("dump with reserved slots has %d vectors", len(all.Vectors))
	}
}
