package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvalancy-mt/logitech-bcc950/internal/camera"
	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/setup"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install prerequisites, detect the camera and test its controls",
	Long: `Installs v4l-utils through the system package manager if v4l2-ctl is
missing, locates the BCC950 (by product name, then by probing every video
device for PTZ controls), persists the discovered device path and checks
that the pan, tilt and zoom controls are all available.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()

		fmt.Println("Setting up Logitech BCC950 camera control...")

		if backendName != "uvc" {
			installer := setup.NewInstaller(logger)
			if err := installer.EnsureTool(); err != nil {
				fail(err)
			}
		}

		cfg, path := loadConfig()
		ch := newChannel(logger)

		fmt.Println("Looking for Logitech BCC950 camera...")
		locator := camera.NewLocator(ch, func(c config.Config) error {
			return config.Save(path, c)
		}, logger)
		cfg, found := locator.Find(cfg)
		if found {
			fmt.Printf("Found compatible PTZ camera at: %s\n", cfg.Device)
		} else {
			fmt.Printf("No compatible camera found. Using default device: %s\n", cfg.Device)
		}

		fmt.Println("Testing camera controls...")
		probe, _, err := camera.Test(ch, cfg.Device)
		if err != nil {
			fail(fmt.Errorf("listing controls: %w", err))
		}
		report := func(name string, ok bool) {
			if ok {
				fmt.Printf("%s control is available.\n", name)
			} else {
				fmt.Printf("WARNING: %s control not found for this camera.\n", name)
			}
		}
		report("Pan", probe.Pan)
		report("Tilt", probe.Tilt)
		report("Zoom", probe.Zoom)

		fmt.Println("Setup complete.")
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
