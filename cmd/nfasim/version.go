package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automatakit/nfa"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nfasim",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nfasim version %s\n", nfa.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
