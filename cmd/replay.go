package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/ttygif/ttygif/player"
)

func init() {
	rootCmd.AddCommand(replayCmd)
}

var replayCmd = func() *cobra.Command {
	c := actionCommand(player.KindReplay, "Replay a recording in the terminal with its original timing")
	c.Run = func(cmd *cobra.Command, args []string) {
		_, err := play(cmd.Context(), args[0], player.NewReplay(os.Stdout, player.Sleep))
		handleErr(err)
	}
	return c
}()
