// Package setup installs the v4l2 userspace tooling the CLI depends on.
package setup

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

const toolName = "v4l2-ctl"

// CommandRunner executes one shell command line. The install commands
// chain package-manager invocations, so they run through a shell.
type CommandRunner func(command string) error

func shellRunner(command string) error {
	cmd := exec.Command("sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// DetectOS returns the distribution ID from /etc/os-release, falling
// back to the generic OS name when the file is absent.
func DetectOS() string {
	return detectOS("/etc/os-release")
}

func detectOS(releaseFile string) string {
	f, err := os.Open(releaseFile)
	if err != nil {
		return runtime.GOOS
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "ID=") {
			return strings.Trim(strings.TrimPrefix(line, "ID="), `"`)
		}
	}
	return runtime.GOOS
}

// InstallCommand returns the package-manager invocation that installs
// v4l-utils on the given distribution.
func InstallCommand(osName string) (string, bool) {
	switch osName {
	case "ubuntu", "debian":
		return "sudo apt-get update && sudo apt-get install -y v4l-utils", true
	case "fedora":
		return "sudo dnf install -y v4l-utils", true
	case "centos", "rhel":
		return "sudo yum install -y v4l-utils", true
	case "arch":
		return "sudo pacman -Sy v4l-utils", true
	}
	return "", false
}

// Installer ensures v4l2-ctl is available, installing v4l-utils through
// the distribution's package manager when it is missing.
type Installer struct {
	lookPath func(file string) (string, error)
	run      CommandRunner
	detect   func() string
	log      *zap.Logger
}

// NewInstaller builds an installer that uses the real PATH and shell.
func NewInstaller(log *zap.Logger) *Installer {
	return &Installer{
		lookPath: exec.LookPath,
		run:      shellRunner,
		detect:   DetectOS,
		log:      log,
	}
}

// EnsureTool checks PATH for v4l2-ctl and installs v4l-utils if absent.
func (i *Installer) EnsureTool() error {
	if _, err := i.lookPath(toolName); err == nil {
		i.log.Debug("control utility already installed", zap.String("tool", toolName))
		return nil
	}

	osName := i.detect()
	command, ok := InstallCommand(osName)
	if !ok {
		return fmt.Errorf("unsupported OS %q: install v4l-utils manually", osName)
	}

	i.log.Info("installing v4l-utils", zap.String("os", osName))
	if err := i.run(command); err != nil {
		return fmt.Errorf("installing v4l-utils: %w", err)
	}
	return nil
}
