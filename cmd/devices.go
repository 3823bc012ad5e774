package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mvalancy-mt/logitech-bcc950/internal/camera"
	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

// Parent Command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Inspect and locate video devices",
}

// List Command
var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available video devices",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		ch := newChannel(logger)

		listing, err := ch.ListDevices()
		if err != nil {
			fail(fmt.Errorf("listing devices: %w", err))
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(v4l2.ParseDevices(listing)); err != nil {
				fail(err)
			}
			return
		}

		fmt.Println("Available camera devices:")
		fmt.Print(listing)
	},
}

// Find Command
var devicesFindCmd = &cobra.Command{
	Use:   "find",
	Short: "Locate the BCC950 and persist its device path",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		cfg, path := loadConfig()
		ch := newChannel(logger)

		fmt.Println("Looking for Logitech BCC950 camera...")
		locator := camera.NewLocator(ch, func(c config.Config) error {
			return config.Save(path, c)
		}, logger)

		cfg, found := locator.Find(cfg)
		if !found {
			fmt.Printf("No compatible camera found. Using configured device: %s\n", cfg.Device)
			os.Exit(1)
		}
		fmt.Printf("Found compatible PTZ camera at: %s\n", cfg.Device)
	},
}

// Info Command
var devicesInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show full information for the configured device",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		cfg, _ := loadConfig()
		ch := newChannel(logger)

		info, err := ch.DumpInfo(cfg.Device)
		if err != nil {
			fail(fmt.Errorf("reading device info: %w", err))
		}
		fmt.Printf("Camera information for %s:\n", cfg.Device)
		fmt.Print(info)
	},
}

// Test Command
var devicesTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Check that the configured device exposes the PTZ controls",
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		cfg, _ := loadConfig()
		ch := newChannel(logger)

		probe, controls, err := camera.Test(ch, cfg.Device)
		if err != nil {
			fail(fmt.Errorf("listing controls: %w", err))
		}

		fmt.Println("Available camera controls:")
		fmt.Print(controls)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "CONTROL\tAVAILABLE")
		fmt.Fprintln(w, "-------\t---------")
		fmt.Fprintf(w, "pan_speed\t%v\n", probe.Pan)
		fmt.Fprintf(w, "tilt_speed\t%v\n", probe.Tilt)
		fmt.Fprintf(w, "zoom_absolute\t%v\n", probe.Zoom)
		w.Flush()

		if !probe.OK() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesFindCmd)
	devicesCmd.AddCommand(devicesInfoCmd)
	devicesCmd.AddCommand(devicesTestCmd)
}
