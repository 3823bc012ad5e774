package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Parent commands
var panCmd = &cobra.Command{
	Use:   "pan",
	Short: "Pan the camera",
}

var tiltCmd = &cobra.Command{
	Use:   "tilt",
	Short: "Tilt the camera",
}

var zoomCmd = &cobra.Command{
	Use:   "zoom",
	Short: "Zoom the camera",
}

var panLeftCmd = &cobra.Command{
	Use:   "left",
	Short: "Pan the camera left",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Panning left...")
		if err := newSequencer().PanLeft(); err != nil {
			fail(err)
		}
	},
}

var panRightCmd = &cobra.Command{
	Use:   "right",
	Short: "Pan the camera right",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Panning right...")
		if err := newSequencer().PanRight(); err != nil {
			fail(err)
		}
	},
}

var tiltUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Tilt the camera up",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tilting up...")
		if err := newSequencer().TiltUp(); err != nil {
			fail(err)
		}
	},
}

var tiltDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Tilt the camera down",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Tilting down...")
		if err := newSequencer().TiltDown(); err != nil {
			fail(err)
		}
	},
}

var zoomInCmd = &cobra.Command{
	Use:   "in",
	Short: "Zoom the camera in by the configured step",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Zooming in...")
		if err := newSequencer().ZoomIn(); err != nil {
			fail(err)
		}
	},
}

var zoomOutCmd = &cobra.Command{
	Use:   "out",
	Short: "Zoom the camera out by the configured step",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Zooming out...")
		if err := newSequencer().ZoomOut(); err != nil {
			fail(err)
		}
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Recenter the camera and return zoom to minimum",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Resetting camera position...")
		if err := newSequencer().Reset(); err != nil {
			fail(err)
		}
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a demonstration sequence of camera movements",
	Run: func(cmd *cobra.Command, args []string) {
		seq := newSequencer()
		fmt.Println("Running camera demonstration sequence...")
		fmt.Println("Starting demo in 3 seconds...")
		if err := seq.Demo(); err != nil {
			fail(err)
		}
		fmt.Println("Demo sequence completed.")
	},
}

func init() {
	rootCmd.AddCommand(panCmd)
	rootCmd.AddCommand(tiltCmd)
	rootCmd.AddCommand(zoomCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(demoCmd)

	panCmd.AddCommand(panLeftCmd)
	panCmd.AddCommand(panRightCmd)
	tiltCmd.AddCommand(tiltUpCmd)
	tiltCmd.AddCommand(tiltDownCmd)
	zoomCmd.AddCommand(zoomInCmd)
	zoomCmd.AddCommand(zoomOutCmd)
}
