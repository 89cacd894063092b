package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/automatakit/nfa"
	"github.com/automatakit/nfa/internal/cli"
	"github.com/automatakit/nfa/internal/compiler"
	"github.com/automatakit/nfa/internal/logging"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [definition.yaml]",
	Short: "Trace a machine over an input string",
	Long: `Runs a machine over an input string and prints the state set at every
position. With a YAML definition file the machine is built from it; without
one the built-in two-state sample machine is used.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, _ := cmd.Flags().GetString("input")
		noColor, _ := cmd.Flags().GetBool("no-color")
		debug, _ := cmd.Flags().GetBool("debug")

		var engineOpts []nfa.Option
		if debug {
			engineOpts = append(engineOpts, nfa.WithLogger(logging.New(slog.LevelDebug)))
		}

		var (
			m          *nfa.Machine
			defaultInp string
			err        error
		)
		if len(args) == 1 {
			m, defaultInp, err = compiler.Load(args[0], engineOpts...)
		} else {
			m, defaultInp, err = cli.Sample(engineOpts...)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if input == "" {
			input = defaultInp
		}

		opts := cli.TraceOptions{Color: !noColor}
		if err := cli.Trace(os.Stdout, m, input, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("input", "i", "", "Input string (default: the definition's input)")
	runCmd.Flags().Bool("no-color", false, "Disable terminal colors")
	runCmd.Flags().Bool("debug", false, "Log engine internals to stderr")

	rootCmd.Run = runCmd.Run
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
