package cmd

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/recorder"
	"github.com/ttygif/ttygif/style"
	"github.com/ttygif/ttygif/util"
)

// defaultRecording is the file written when none is given.
const defaultRecording = "ttyrecord"

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringP("command", "c", "", "Command to record instead of the shell")
	lo.Must0(viper.BindPFlag(key.RecordCommand, recordCmd.Flags().Lookup("command")))

	recordCmd.Flags().BoolP("append", "a", false, "Append to the recording instead of replacing it")
}

var recordCmd = &cobra.Command{
	Use:   "record [file]",
	Short: "Record a terminal session into a ttyrec file",
	Long: fmt.Sprintf(`Record a terminal session into a ttyrec file.

The shell ($SHELL) is started under a pseudo terminal and everything it prints
is stored with its timestamp. Exit the shell to stop recording.
Written to %q unless a file is given.`, defaultRecording),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := defaultRecording
		if len(args) == 1 {
			path = args[0]
		}

		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if lo.Must(cmd.Flags().GetBool("append")) {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}

		order, err := byteOrder()
		handleErr(err)

		file, err := filesystem.API().OpenFile(path, flags, 0o644)
		handleErr(err)
		defer func() { _ = file.Close() }()

		r := recorder.New(viper.GetString(key.RecordCommand))
		r.Options = append(r.Options, order)

		fmt.Printf("%s recording to %s\n", icon.Get(icon.Film), style.Fg(color.Purple)(path))
		stats, err := r.Record(cmd.Context(), file)
		if err != nil {
			_ = file.Close()
			handleErr(err)
		}

		fmt.Printf(
			"%s recorded %s into %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(stats.Frames, "frame", "frames"),
			style.Fg(color.Purple)(path),
		)
	},
}
