//go:build linux

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vietthu-ngo/driver-ads1115/drivers/ads1115"
	"github.com/vietthu-ngo/driver-ads1115/i2cdev"
	"github.com/vietthu-ngo/driver-ads1115/services/hal"
)

func init() {
	getCmd.Flags().StringVarP(&getOpts.Device, "device", "d", "/dev/i2c-1", "I2C adapter device")
	getCmd.Flags().Uint16VarP(&getOpts.Address, "address", "a", ads1115.AddressDefault, "7-bit device address")
	getCmd.Flags().DurationVar(&getOpts.Settle, "settle", ads1115.DefaultSettle, "conversion settle time")
	rootCmd.AddCommand(getCmd)
}

var (
	getCmd = &cobra.Command{
		Use:   "get <channel>",
		Short: "Read one single-ended channel",
		Long:  "Read one channel (0-3) and print the raw sample and voltage.",
		Args:  cobra.ExactArgs(1),
		RunE:  get,
	}
	getOpts = struct {
		Device  string
		Address uint16
		Settle  time.Duration
	}{}
)

func get(cmd *cobra.Command, args []string) error {
	sel, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return fmt.Errorf("channel %q: %w", args[0], err)
	}
	ch := ads1115.Channel(sel)

	bus, err := i2cdev.Open(getOpts.Device)
	if err != nil {
		return err
	}
	defer bus.Close()

	svc := hal.New()
	cfg := ads1115.Config{Address: getOpts.Address, Waiter: ads1115.FixedDelay(getOpts.Settle)}
	if err := svc.Attach(bus, cfg); err != nil {
		return err
	}
	defer svc.Detach()

	sample, err := svc.ReadChannel(ch)
	if err != nil {
		return fmt.Errorf("read %s: %w", ch, err)
	}
	fmt.Printf("%s: ADC=%d, Voltage=%.3f V\n", ch, sample, ads1115.Volts(sample))
	return nil
}
