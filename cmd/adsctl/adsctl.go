//go:build linux

// adsctl reads the ADS1115 analog-to-digital converter over a Linux I2C bus.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adsctl",
	Short: "adsctl reads an ADS1115 ADC",
	Long:  "adsctl reads single-ended channels of an ADS1115 ADC on a Linux I2C bus",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
