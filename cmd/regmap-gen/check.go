package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [chip or file.svd]...",
	Short: "Validate register maps",
	Long:  "Validate the register blocks, instance table and vector table of compiled in chips or SVD files.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		failed := false
		for _, arg := range args {
			r, target, err := load(arg)
			if err == nil {
				err = verify(r, target)
			}
			if err != nil {
				log.Printf("%s: %v", arg, err)
				failed = true
				continue
			}

			instances, aliases := 0, 0
			for _, t := range r.Types() {
				instances += len(t.Instances)
				aliases += len(t.Aliases)
			}
			assigned := 0
			for _, v := range r.Vectors().Slots() {
				if v.IRQ >= 0 && !v.IsReserved() {
					assigned++
				}
			}
			fmt.Printf("%s: %d types, %d instances, %d aliases, %d of %d vectors assigned\n",
				arg, len(r.Types()), instances, aliases, assigned, r.Vectors().DeviceCount())
			if target != nil {
				fmt.Printf("%s: %s\n", arg, describe(target))
			}
		}
		if failed {
			log.Fatal("check failed")
		}
	},
}
