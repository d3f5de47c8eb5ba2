package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tablebook",
		Short:         "Restaurant table availability and reservation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	serve := newServeCmd()
	// bare `tablebook` behaves like `tablebook serve`
	root.RunE = func(cmd *cobra.Command, args []string) error {
		return serve.RunE(serve, args)
	}

	root.AddCommand(serve)
	root.AddCommand(newSeedCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tablebook %s (commit=%s)\n", Version, CommitSHA)
		},
	}
}
