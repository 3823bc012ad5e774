package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mvalancy-mt/logitech-bcc950/internal/config"
	"github.com/mvalancy-mt/logitech-bcc950/internal/ptz"
	"github.com/mvalancy-mt/logitech-bcc950/internal/uvc"
	"github.com/mvalancy-mt/logitech-bcc950/internal/v4l2"
)

// Persistent flag values
var (
	deviceOverride string
	backendName    string
	verbose        bool
	jsonOutput     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bcc950ctl",
	Short: "Control the pan, tilt and zoom of a Logitech BCC950 ConferenceCam",
	Long: `Drive the PTZ controls of a Logitech BCC950 ConferenceCam through the
Video4Linux control interface. The device path and motion preferences
persist in ~/.bcc950_config.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&deviceOverride, "device", "d", "", "camera device path (overrides the configured one)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "ctl", "control backend: ctl (v4l2-ctl) or uvc (direct V4L2)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON where supported")
}

// fail prints the error and exits; used by every command's Run.
func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the diagnostics logger. Warnings and errors always
// show; --verbose turns on the rest.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		fail(err)
	}
	return logger
}

// loadConfig reads the persisted preferences, applying the --device
// override on top.
func loadConfig() (config.Config, string) {
	path, err := config.DefaultPath()
	if err != nil {
		fail(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fail(err)
	}
	if deviceOverride != "" {
		cfg.Device = deviceOverride
	}
	return cfg, path
}

// newChannel picks the control backend selected by --backend.
func newChannel(logger *zap.Logger) v4l2.Channel {
	switch backendName {
	case "uvc":
		return uvc.New(logger)
	case "ctl", "":
		return v4l2.New(logger)
	default:
		fail(fmt.Errorf("unknown backend %q (want ctl or uvc)", backendName))
		return nil
	}
}

// newSequencer wires up the pieces every motion command needs.
func newSequencer() *ptz.Sequencer {
	logger := newLogger()
	cfg, _ := loadConfig()
	return ptz.NewSequencer(newChannel(logger), cfg, logger)
}
