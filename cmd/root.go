// Package cmd implements the command-line interface for ttygif.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/color"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/icon"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/log"
	"github.com/ttygif/ttygif/player"
	"github.com/ttygif/ttygif/style"
)

// exitInterrupted is the conventional status of a process stopped by SIGINT.
const exitInterrupted = 130

func init() {
	cobra.EnableCaseInsensitive = true

	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().IntP("factor", "f", 1, "Divide every delay between frames by this positive integer")
	lo.Must0(viper.BindPFlag(key.PlayerFactor, rootCmd.PersistentFlags().Lookup("factor")))

	rootCmd.PersistentFlags().String("byte-order", "little", "Byte order of the frame headers (little or big)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("byte-order", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"little", "big"}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.TtyrecByteOrder, rootCmd.PersistentFlags().Lookup("byte-order")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd dispatches to one action per subcommand. Anything else left on the
// command line is resolved as an action name and rejected before a recording is opened.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Replay, inspect and convert ttyrec terminal recordings",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Replay, inspect and convert ttyrec terminal recordings"),
	Example: fmt.Sprintf(`  %[1]s replay session.tty
  %[1]s inspect --json session.tty
  %[1]s output -o demo.gif -f 2 session.tty`, constant.App),
	SilenceErrors: true,
	Args:          resolveAction,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
// The command context is cancelled on SIGINT and SIGTERM.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	handleErr(err)
}

func handleErr(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, context.Canceled) {
		log.Info("interrupted")
		_, _ = fmt.Fprintf(os.Stderr, "\n%s interrupted\n", icon.Get(icon.Warn))
		os.Exit(exitInterrupted)
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
	os.Exit(1)
}

// warn reports a failure that does not stop the current run.
func warn(err error) {
	log.Warn(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Warn), style.Warning(strings.Trim(err.Error(), " \n")))
}

// resolveAction rejects arguments that no subcommand claimed. Action names are
// matched without regard to case, so only undefined actions reach it.
func resolveAction(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	_, err := player.ParseKind(args[0])
	return err
}

// actionCommand returns the skeleton shared by the subcommands realising a player action.
func actionCommand(kind player.Kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind.String() + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
	}
}
