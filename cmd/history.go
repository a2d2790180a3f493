package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/history"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/style"
	"github.com/ttygif/ttygif/util"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print the entries as JSON")
	historyCmd.Flags().Bool("clear", false, "Forget every entry")
	historyCmd.Flags().String("remove", "", "Forget the render into this output path")
	historyCmd.MarkFlagsMutuallyExclusive("json", "clear", "remove")

	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the animations rendered so far",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			cmd.Printf("%s history cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return
		}

		if output := lo.Must(cmd.Flags().GetString("remove")); output != "" {
			handleErr(history.Remove(output))
			cmd.Printf("%s %s removed from history\n", style.Fg(color.Green)(icon.Get(icon.Success)), output)
			return
		}

		entries, err := history.List()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(entries))
			return
		}

		if len(entries) == 0 {
			cmd.Println(style.Faint("nothing rendered yet"))
			return
		}

		width := 80
		if w, _, err := util.TerminalSize(); err == nil {
			width = util.Max(w, 40)
		}

		for _, entry := range entries {
			line := fmt.Sprintf(
				"%s %s %s",
				icon.Get(icon.Film),
				style.Faint(entry.CreatedAt.Format("2006-01-02 15:04")),
				entry,
			)
			cmd.Println(truncate.StringWithTail(line, uint(width), "…"))
		}
	},
}
