package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/player"
	"github.com/ttygif/ttygif/style"
	"github.com/ttygif/ttygif/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolP("json", "j", false, "Print one JSON object per frame")
	inspectCmd.Flags().Bool("schema", false, "Print the JSON schema of the frame objects and exit")
	inspectCmd.Flags().IntP("preview", "p", player.DefaultPreviewBytes, "Number of payload bytes to show")
	lo.Must0(viper.BindPFlag(key.InspectPreviewBytes, inspectCmd.Flags().Lookup("preview")))

	inspectCmd.SetOut(os.Stdout)
}

var inspectCmd = func() *cobra.Command {
	c := actionCommand(player.KindInspect, "Print the delay, length and leading bytes of every frame")
	c.Args = func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	}
	c.Run = func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			schema := reflector.Reflect(&player.Record{})
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(schema))
			return
		}

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		options := []player.InspectOption{player.WithPreview(viper.GetInt(key.InspectPreviewBytes))}
		if asJson {
			options = append(options, player.WithJSON())
		}

		summary, err := play(cmd.Context(), args[0], player.NewInspect(cmd.OutOrStdout(), options...))
		handleErr(err)

		if asJson {
			return
		}

		cmd.Printf(
			"%s %s, %s, %s\n",
			icon.Get(icon.Film),
			style.Bold(util.Quantify(summary.Frames, "frame", "frames")),
			style.Faint(fmt.Sprintf("%d skipped", summary.Skipped)),
			style.Faint(fmt.Sprintf("%.3fs", summary.Duration)),
		)
	}
	return c
}()
