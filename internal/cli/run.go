package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seqseed/seqseed/internal/config"
	"github.com/seqseed/seqseed/internal/console"
	"github.com/seqseed/seqseed/internal/locate"
	"github.com/seqseed/seqseed/internal/runtime"
	"github.com/seqseed/seqseed/internal/scaffold"
	"github.com/spf13/cobra"
)

// newRunner builds the runner used by `run`.
var newRunner = func(command, dir string) runtime.Runner {
	r := runtime.NewCommandRunner(command, dir)
	r.Stdout = os.Stdout
	return r
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Seed the database with data",
	Long: `Locate the generated seeder entry file and execute it with the configured
runner (npx ts-node by default).

The source root (src) and its immediate subdirectories are searched for a
database-seeder directory. Anything the runner writes to stderr is treated as
a failure.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	settings, err := config.Load(cwd)
	if err != nil {
		return err
	}

	target := locate.Target{
		DirName:   filepath.Base(settings.ScaffoldDir),
		EntryFile: scaffold.EntryFile,
	}
	res := locate.EntryPath(settings.SourceRoot, target)
	if !res.Found {
		console.Log.WithField("path", res.Path).
			Warnf("no %s directory found under %s, using the default location", target.DirName, settings.SourceRoot)
	}

	r := newRunner(settings.Runner, cwd)
	if _, err := r.Run(cmd.Context(), res.Path); err != nil {
		if errors.Is(err, runtime.ErrStderr) {
			return fmt.Errorf("seeder reported errors: %w", err)
		}
		return fmt.Errorf("running seeder %s: %w", res.Path, err)
	}

	console.Success(cmd.OutOrStdout(), "The Seeding Process Finished Successfully")
	return nil
}
