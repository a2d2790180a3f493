// Package open shows a rendered file with the default viewer of the platform.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/ttygif/ttygif/constant"
)

// Argv returns the command line opening input on goos.
func Argv(goos, input string) ([]string, error) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return []string{rundll, "url.dll,FileProtocolHandler", input}, nil
	case constant.Darwin:
		return []string{"open", input}, nil
	case constant.Linux:
		return []string{"xdg-open", input}, nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Start opens input without waiting for the viewer to exit.
func Start(goos, input string) error {
	argv, err := Argv(goos, input)
	if err != nil {
		return err
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
