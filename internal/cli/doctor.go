package cli

import (
	"fmt"

	"github.com/seqseed/seqseed/internal/config"
	"github.com/seqseed/seqseed/internal/console"
	"github.com/seqseed/seqseed/internal/runtime"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the seeder runner toolchain is installed",
	Long: `Verify that node (` + runtime.MinNodeVersion + `) and the configured runner program are on PATH,
and that seqseed.yaml, if present, is valid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		cwd, err := workingDir()
		if err != nil {
			return err
		}
		settings, err := config.Load(cwd)
		if err != nil {
			console.Failure(w, "  ✗ settings: %v", err)
			return fmt.Errorf("doctor found problems")
		}
		console.Success(w, "  ✓ settings (runner: %s)", settings.Runner)

		failed := 0
		for _, c := range runtime.Doctor(cmd.Context(), settings.Runner) {
			label := c.Name
			if c.Version != "" {
				label += " " + c.Version
			}
			if c.OK {
				console.Success(w, "  ✓ %s", label)
				continue
			}
			failed++
			console.Failure(w, "  ✗ %s: %s", label, c.Message)
		}

		if failed > 0 {
			return fmt.Errorf("doctor found %d problem(s)", failed)
		}
		return nil
	},
}
