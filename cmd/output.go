package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/capture"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/encoder"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/history"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/open"
	"github.com/ttygif/ttygif/player"
	"github.com/ttygif/ttygif/process"
	"github.com/ttygif/ttygif/style"
	"github.com/ttygif/ttygif/util"
	"github.com/ttygif/ttygif/where"
)

func init() {
	rootCmd.AddCommand(outputCmd)

	outputCmd.Flags().StringP("output", "o", constant.DefaultOutput, "Animated image to write")
	lo.Must0(viper.BindPFlag(key.OutputFilename, outputCmd.Flags().Lookup("output")))

	outputCmd.Flags().String("frames-dir", "", "Directory for the captured frames (a temporary one if empty)")
	lo.Must0(viper.BindPFlag(key.OutputFramesDir, outputCmd.Flags().Lookup("frames-dir")))

	outputCmd.Flags().Bool("keep-frames", false, "Keep the captured frames after encoding")
	lo.Must0(viper.BindPFlag(key.OutputKeepFrames, outputCmd.Flags().Lookup("keep-frames")))

	outputCmd.Flags().String("backend", "", "Screen capture backend (command or virtual)")
	lo.Must0(outputCmd.RegisterFlagCompletionFunc("backend", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return capture.Backends(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.CaptureBackend, outputCmd.Flags().Lookup("backend")))

	outputCmd.Flags().BoolP("yes", "y", false, "Overwrite an existing output without asking")
	outputCmd.Flags().Bool("open", false, "Open the animation with the default viewer once written")
}

var outputCmd = func() *cobra.Command {
	c := actionCommand(player.KindOutput, "Capture the screen while replaying and encode the frames into a GIF")
	c.Run = func(cmd *cobra.Command, args []string) {
		input := args[0]
		output := viper.GetString(key.OutputFilename)

		if !confirmOverwrite(output, lo.Must(cmd.Flags().GetBool("yes"))) {
			return
		}

		p, err := newPlayer()
		handleErr(err)

		dir, temporary, err := framesDir()
		handleErr(err)

		capturer, err := capture.New(capture.FromViper(), process.Exec{})
		handleErr(err)

		enc := encoder.FromViper(process.Exec{})
		if !process.Available(enc.Binary) {
			warn(fmt.Errorf("%s was not found in PATH, frames will be kept in %s", enc.Binary, dir))
		}

		file, err := filesystem.API().Open(input)
		handleErr(err)
		defer func() { _ = file.Close() }()

		result, err := p.Render(cmd.Context(), file, player.NewOutput(os.Stdout, capturer, dir, warn), enc, output)
		if err != nil {
			if result != nil && result.Captured > 0 {
				warn(fmt.Errorf("%s kept in %s", util.Quantify(result.Captured, "frame", "frames"), dir))
			}
			_ = file.Close()
			handleErr(fmt.Errorf("%s: %w", input, err))
		}

		if !result.Encoded {
			if result.Captured > 0 {
				warn(fmt.Errorf("%s kept in %s", util.Quantify(result.Captured, "frame", "frames"), dir))
			}
			return
		}

		if temporary && !viper.GetBool(key.OutputKeepFrames) {
			if err := util.Delete(dir); err != nil {
				log.Warn(err)
			}
		} else {
			fmt.Printf("%s frames kept in %s\n", icon.Get(icon.Frame), dir)
		}

		if viper.GetBool(key.HistorySave) {
			entry := history.NewEntry(input, output, result.Frames, result.Captured, result.Duration)
			if err := history.Save(entry); err != nil {
				log.Warn(err)
			}
		}

		fmt.Printf(
			"%s wrote %s from %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(output),
			util.Quantify(result.Captured, "frame", "frames"),
		)

		if lo.Must(cmd.Flags().GetBool("open")) {
			if err := open.Start(runtime.GOOS, output); err != nil {
				warn(err)
			}
		}
	}
	return c
}()

// framesDir returns the configured frames directory, or a fresh temporary one.
func framesDir() (dir string, temporary bool, err error) {
	dir = viper.GetString(key.OutputFramesDir)
	if dir == "" {
		return where.Frames(), true, nil
	}

	if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
		return "", false, err
	}
	return dir, false, nil
}

// confirmOverwrite asks before replacing an existing output.
// Without a terminal on stdin there is nobody to ask and the file is replaced.
func confirmOverwrite(output string, yes bool) bool {
	if yes || !util.IsTerminal(os.Stdin) {
		return true
	}

	if !filesystem.Exists(output) {
		return true
	}

	var overwrite bool
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("%s already exists. Overwrite?", output),
		Default: false,
	}, &overwrite)
	handleErr(err)

	return overwrite
}
