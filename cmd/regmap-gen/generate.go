package main

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/vega/cmd/regmap-gen/generator"
	"omibyte.io/vega/cmd/regmap-gen/model"
	"omibyte.io/vega/cmd/regmap-gen/svd"
)

var (
	generateOpts = struct {
		input   string
		output  string
		pkgName string
	}{}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a register map package from an SVD file",
		Long:  "Decode an SVD file, validate every register block and write the Go register map package for the device.",
		Run: func(cmd *cobra.Command, args []string) {
			if len(generateOpts.input) == 0 {
				println("no input file specified.")
				cmd.Help()
				return
			}

			device, err := svd.Open(generateOpts.input)
			if err != nil {
				log.Fatal(err)
			}

			d, err := model.Build(device)
			if err != nil {
				log.Fatalf("%s: %v", generateOpts.input, err)
			}

			// The registry is built here so a bad instance table fails now
			// rather than at init of the generated package.
			if _, err = d.Registry(); err != nil {
				log.Fatalf("%s: %v", generateOpts.input, err)
			}

			pkgName := generateOpts.pkgName
			if len(pkgName) == 0 {
				pkgName = strings.ToLower(d.Name)
			}

			files, err := generator.Generate(d, pkgName)
			if err != nil {
				log.Fatal(err)
			}

			outputDir := filepath.Join(generateOpts.output, pkgName)
			if err = files.Write(outputDir); err != nil {
				log.Fatal("file io error: ", err)
			}
			log.Printf("wrote %d files to %s", len(files), outputDir)
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.input, "in", "i", "", "input SVD file")
	generateCmd.Flags().StringVarP(&generateOpts.output, "out", "o", "chip", "output directory")
	generateCmd.Flags().StringVarP(&generateOpts.pkgName, "package", "p", "", "package name. Default: the lower case device name")
}
