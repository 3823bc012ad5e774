package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
)

// Variables to hold flag values
var (
	setDevice    string
	setPanSpeed  int
	setTiltSpeed int
	setZoomStep  int
)

// Parent Command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the persisted preferences",
}

// Show Command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := loadConfig()

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(cfg); err != nil {
				fail(err)
			}
			return
		}

		fmt.Printf("DEVICE=%s\n", cfg.Device)
		fmt.Printf("PAN_SPEED=%d\n", cfg.PanSpeed)
		fmt.Printf("TILT_SPEED=%d\n", cfg.TiltSpeed)
		fmt.Printf("ZOOM_STEP=%d\n", cfg.ZoomStep)
	},
}

// Set Command
var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more preferences and persist them",
	Example: `  bcc950ctl config set --pan-speed 2 --zoom-step 20
  bcc950ctl config set --camera /dev/video2`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, path := loadConfig()

		changed := false
		if setDevice != "" {
			cfg.Device = setDevice
			changed = true
		}
		if cmd.Flags().Changed("pan-speed") {
			if setPanSpeed < 1 {
				fail(fmt.Errorf("pan speed must be >= 1, got %d", setPanSpeed))
			}
			cfg.PanSpeed = setPanSpeed
			changed = true
		}
		if cmd.Flags().Changed("tilt-speed") {
			if setTiltSpeed < 1 {
				fail(fmt.Errorf("tilt speed must be >= 1, got %d", setTiltSpeed))
			}
			cfg.TiltSpeed = setTiltSpeed
			changed = true
		}
		if cmd.Flags().Changed("zoom-step") {
			if setZoomStep < 1 {
				fail(fmt.Errorf("zoom step must be > 0, got %d", setZoomStep))
			}
			cfg.ZoomStep = setZoomStep
			changed = true
		}

		if !changed {
			fmt.Println("Nothing to change. See 'bcc950ctl config set --help'.")
			return
		}

		if err := config.Save(path, cfg); err != nil {
			fail(err)
		}
		fmt.Printf("Configuration saved to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&setDevice, "camera", "", "camera device path to persist")
	configSetCmd.Flags().IntVar(&setPanSpeed, "pan-speed", 0, "pan speed (>= 1)")
	configSetCmd.Flags().IntVar(&setTiltSpeed, "tilt-speed", 0, "tilt speed (>= 1)")
	configSetCmd.Flags().IntVar(&setZoomStep, "zoom-step", 0, "zoom step (> 0)")
}
