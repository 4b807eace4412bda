package cmd

import (
	"codeclip/pkg/clipboard"
	"codeclip/pkg/collect"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all commands and injected through Execute.
var logger *zap.Logger

// RootCmd is the base command when called without any subcommands.
// Running it performs the full collect-and-copy pass with the built-in
// scan parameters; no flags alter what is collected.
var RootCmd = &cobra.Command{
	Use:   "codeclip",
	Short: "codeclip copies a source tree to the clipboard",
	Long: `codeclip walks the fixed source directory, gathers every matching source
file into a single fenced text blob with per-file path headers, and places
the result on the system clipboard.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return collect.Run(collect.DefaultConfig(), clipboard.New(), logger)
	},
}

// Execute wires the shared logger into the command tree and runs it.
func Execute(l *zap.Logger) error {
	logger = l
	return RootCmd.Execute()
}
