package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/capture"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/process"
	"github.com/ttygif/ttygif/style"
	"github.com/ttygif/ttygif/util"
)

// dependency is an external program used by the output action.
type dependency struct {
	name    string
	purpose string
	install map[string]string
}

func (d dependency) hint() string {
	return d.install[runtime.GOOS]
}

// dependencies lists the programs the current configuration relies on.
func dependencies() []dependency {
	deps := []dependency{
		{
			name:    viper.GetString(key.EncoderBinary),
			purpose: "encoding frames",
			install: map[string]string{
				constant.Darwin:  "brew install ffmpeg",
				constant.Linux:   "sudo apt install ffmpeg",
				constant.Windows: "scoop install ffmpeg",
			},
		},
	}

	if viper.GetString(key.CaptureBackend) != capture.BackendCommand {
		return deps
	}

	if command := viper.GetStringSlice(key.CaptureCommand); len(command) > 0 {
		deps = append(deps, dependency{
			name:    command[0],
			purpose: "capturing the screen",
			install: map[string]string{
				constant.Darwin: "brew install imagemagick",
				constant.Linux:  "sudo apt install imagemagick",
			},
		})
	}

	if viper.GetString(key.CaptureWindow) == "" {
		if command := viper.GetStringSlice(key.CaptureWindowCommand); len(command) > 0 {
			deps = append(deps, dependency{
				name:    command[0],
				purpose: "finding the active window",
				install: map[string]string{
					constant.Linux: "sudo apt install xdotool",
				},
			})
		}
	}

	return deps
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify that the programs used to capture and encode frames are installed",
	Run: func(cmd *cobra.Command, args []string) {
		var missing []dependency
		for _, d := range dependencies() {
			if !process.Available(d.name) {
				missing = append(missing, d)
				continue
			}
			fmt.Printf("%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(d.name), style.Faint(d.purpose))
		}

		if len(missing) == 0 {
			return
		}

		for _, d := range missing {
			printMissingDependency(d)
		}
		handleErr(fmt.Errorf("%s missing", util.Quantify(len(missing), "dependency", "dependencies")))
	},
}

func printMissingDependency(d dependency) {
	title := style.New().Bold(true).Foreground(color.HiRed).Render(fmt.Sprintf("%s Missing dependency: %s", icon.Get(icon.Fail), d.name))
	body := fmt.Sprintf("'%s' is used for %s but was not found in your PATH.", d.name, d.purpose)

	suggestion := ""
	if hint := d.hint(); hint != "" {
		suggestion = fmt.Sprintf("\nTo install it, try running:\n  %s", style.New().Foreground(color.HiCyan).Bold(true).Render(hint))
	}

	fmt.Println(style.Box(color.HiRed).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			body,
			strings.TrimPrefix(suggestion, "\n"),
		),
	))
}
