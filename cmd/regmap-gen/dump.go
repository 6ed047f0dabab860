package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"omibyte.io/vega/layout"
	"omibyte.io/vega/periph"
	"omibyte.io/vega/targets"
)

type dumpDevice struct {
	Target  *dumpTarget  `yaml:"target,omitempty"`
	Vectors []dumpVector `yaml:"vectors"`
	Types   []dumpType   `yaml:"types"`
}

type dumpTarget struct {
	Series       string    `yaml:"series"`
	Core         string    `yaml:"core"`
	Cpu          string    `yaml:"cpu"`
	Architecture string    `yaml:"architecture"`
	Triple       string    `yaml:"triple"`
	Features     string    `yaml:"features,omitempty"`
	Tags         []string  `yaml:"tags,flow,omitempty"`
	Flash        dumpFlash `yaml:"flash"`
}

type dumpFlash struct {
	Origin     string `yaml:"origin"`
	Size       string `yaml:"size"`
	SectorSize uint32 `yaml:"sectorSize"`
}

type dumpVector struct {
	IRQ  int    `yaml:"irq"`
	Name string `yaml:"name"`
}

type dumpType struct {
	Name      string         `yaml:"name"`
	Size      string         `yaml:"size"`
	Instances []dumpInstance `yaml:"instances"`
	Aliases   []dumpInstance `yaml:"aliases,omitempty"`
	Registers []dumpRegister `yaml:"registers"`
}

type dumpInstance struct {
	Name    string `yaml:"name"`
	Base    string `yaml:"base"`
	IRQs    []int  `yaml:"irqs,omitempty"`
	AliasOf string `yaml:"aliasOf,omitempty"`
}

type dumpRegister struct {
	Path   string   `yaml:"path"`
	Offset string   `yaml:"offset"`
	Bits   uint     `yaml:"bits"`
	Access string   `yaml:"access"`
	Views  []string `yaml:"views,flow,omitempty"`
}

var (
	dumpOpts = struct {
		output   string
		reserved bool
	}{}

	dumpCmd = &cobra.Command{
		Use:   "dump [chip or file.svd]",
		Short: "Print a register map as YAML",
		Long:  "Print the vector table, instances and expanded register offsets of a compiled in chip or SVD file as YAML.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			r, target, err := load(args[0])
			if err != nil {
				log.Fatal(err)
			}

			var w io.Writer = os.Stdout
			if len(dumpOpts.output) > 0 {
				f, err := os.Create(dumpOpts.output)
				if err != nil {
					log.Fatal("file io error: ", err)
				}
				defer f.Close()
				w = f
			}

			if err = dump(w, r, target, dumpOpts.reserved); err != nil {
				log.Fatal(err)
			}
		},
	}
)

func init() {
	dumpCmd.Flags().StringVarP(&dumpOpts.output, "out", "o", "", "output file. Default: stdout")
	dumpCmd.Flags().BoolVar(&dumpOpts.reserved, "reserved", false, "include reserved vector slots")
}

func newDumpInstance(inst periph.Instance) dumpInstance {
	di := dumpInstance{Name: inst.Name, Base: fmt.Sprintf("0x%08X", inst.Base), AliasOf: inst.AliasOf}
	for _, n := range inst.IRQs {
		di.IRQs = append(di.IRQs, int(n))
	}
	return di
}

func newDumpTarget(t *targets.TargetInfo) *dumpTarget {
	return &dumpTarget{
		Series:       t.Series,
		Core:         t.Core,
		Cpu:          t.Cpu,
		Architecture: t.Architecture,
		Triple:       t.Triple,
		Features:     t.FormatFeatureString(),
		Tags:         t.Tags,
		Flash: dumpFlash{
			Origin:     fmt.Sprintf("0x%08X", t.Flash.Origin),
			Size:       fmt.Sprintf("%#x", t.Flash.Size),
			SectorSize: t.Flash.SectorSize,
		},
	}
}

// dump writes r as YAML. target may be nil for a register map read from an
// SVD file.
func dump(w io.Writer, r *periph.Registry, target *targets.TargetInfo, reserved bool) error {
	var d dumpDevice
	if target != nil {
		d.Target = newDumpTarget(target)
	}
	for _, v := range r.Vectors().Slots() {
		if v.IsReserved() && !reserved {
			continue
		}
		d.Vectors = append(d.Vectors, dumpVector{IRQ: int(v.IRQ), Name: v.Name})
	}

	for _, t := range r.Types() {
		dt := dumpType{Name: t.Name, Size: fmt.Sprintf("%#x", t.Block.Size)}
		for _, inst := range t.Instances {
			dt.Instances = append(dt.Instances, newDumpInstance(inst))
		}
		for _, inst := range t.Aliases {
			dt.Aliases = append(dt.Aliases, newDumpInstance(inst))
		}
		t.Block.Walk(func(path string, offset uint32, s layout.Slot) {
			reg := dumpRegister{Path: path, Offset: fmt.Sprintf("%#x", offset), Bits: s.Bits, Access: s.Access.String()}
			for _, v := range s.Views {
				reg.Views = append(reg.Views, v.Name)
			}
			dt.Registers = append(dt.Registers, reg)
		})
		d.Types = append(d.Types, dt)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return err
	}
	return enc.Close()
}
