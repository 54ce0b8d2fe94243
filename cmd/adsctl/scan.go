//go:build linux

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietthu-ngo/driver-ads1115/drivers/ads1115"
	"github.com/vietthu-ngo/driver-ads1115/i2cdev"
	"github.com/vietthu-ngo/driver-ads1115/services/hal"
)

func init() {
	scanCmd.Flags().StringVarP(&scanOpts.Device, "device", "d", "/dev/i2c-1", "I2C adapter device")
	scanCmd.Flags().Uint16VarP(&scanOpts.Address, "address", "a", ads1115.AddressDefault, "7-bit device address")
	scanCmd.Flags().DurationVar(&scanOpts.Settle, "settle", ads1115.DefaultSettle, "conversion settle time")
	rootCmd.AddCommand(scanCmd)
}

var (
	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Read all four single-ended channels",
		Long:  "Read AIN0..AIN3 in sequence, stopping at the first failure.",
		Args:  cobra.NoArgs,
		RunE:  scan,
	}
	scanOpts = struct {
		Device  string
		Address uint16
		Settle  time.Duration
	}{}
)

func scan(cmd *cobra.Command, args []string) error {
	bus, err := i2cdev.Open(scanOpts.Device)
	if err != nil {
		return err
	}
	defer bus.Close()

	svc := hal.New()
	cfg := ads1115.Config{Address: scanOpts.Address, Waiter: ads1115.FixedDelay(scanOpts.Settle)}
	if err := svc.Attach(bus, cfg); err != nil {
		return err
	}
	defer svc.Detach()

	for ch := ads1115.AIN0; ch <= ads1115.AIN3; ch++ {
		sample, err := svc.ReadChannel(ch)
		if err != nil {
			return fmt.Errorf("read %s: %w", ch, err)
		}
		fmt.Printf("%s: ADC=%d, Voltage=%.3f V\n", ch, sample, ads1115.Volts(sample))
	}
	return nil
}
