// Command regmap-gen generates typed register maps from CMSIS-SVD device
// descriptions and checks the register maps already in the tree.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var regmapCmd = &cobra.Command{
	Use:   "regmap-gen",
	Short: "Generate and check peripheral register maps",
	Long:  "Generate register overlay structs, instance tables and vector tables from SVD files, and validate register maps against their layout rules.",
}

func init() {
	regmapCmd.AddCommand(generateCmd, checkCmd, dumpCmd)
}

func main() {
	if err := regmapCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
