package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nfasim",
	Short: "nfasim steps a nondeterministic finite automaton over an input string",
	Long: `nfasim builds an NFA, runs it over an input string one symbol at a time,
and prints the set of reachable states at every position.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
