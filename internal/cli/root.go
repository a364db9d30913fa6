package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/seqseed/seqseed/internal/branding"
	"github.com/seqseed/seqseed/internal/console"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a Sequelize database seeder for a NestJS project
(src/database-seeder) and runs it with ts-node.`,
	// Unknown verbs reach RunE instead of failing with "unknown command".
	Args: cobra.ArbitraryArgs,
	// Unknown flags on the root get the same usage hint.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		console.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		printUsageHint(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print diagnostic output")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// printUsageHint lists the two operational verbs.
func printUsageHint(w io.Writer) {
	name := branding.CLIName()
	console.Failure(w, "oops, you may have run a wrong command. There are only two allowed commands:")
	console.Failure(w, "  1. %s init   =>    create folder & files", name)
	console.Failure(w, "  2. %s run    =>    seed the database with data", name)
}

// Execute runs the root command with build info injected via ldflags. A
// non-nil error means the command failed and the process should exit non-zero.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		console.Log.WithError(err).Debug("command failed")
		console.Failure(rootCmd.ErrOrStderr(), "%v", err)
		return err
	}
	return nil
}

// workingDir returns the project directory commands operate on.
func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return cwd, nil
}
