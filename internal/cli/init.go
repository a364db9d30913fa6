package cli

import (
	"fmt"
	"path/filepath"

	"github.com/seqseed/seqseed/internal/config"
	"github.com/seqseed/seqseed/internal/console"
	"github.com/seqseed/seqseed/internal/prompt"
	"github.com/seqseed/seqseed/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initDialect   string
	initUseConfig bool
)

func init() {
	initCmd.Flags().StringVar(&initDialect, "dialect", "", "Database dialect; skips the dialect prompt")
	initCmd.Flags().BoolVar(&initUseConfig, "use-config-module", false, "Load database settings through ConfigService; skips the confirm prompt")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database-seeder folder and files",
	Long: `Create the database seeder module (seeder.ts, seeder.module.ts, seeder.service.ts).

The dialect and config-module choices are taken from --dialect and
--use-config-module, then from seqseed.yaml, and are asked interactively when
neither provides them. Existing seeder files are overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := workingDir()
	if err != nil {
		return err
	}
	settings, err := config.Load(cwd)
	if err != nil {
		return err
	}

	provider := &prompt.Preset{
		Dialect:         settings.Dialect,
		UseConfigModule: settings.UseConfigModule,
		Fallback:        prompt.NewInteractive(cmd.InOrStdin(), cmd.OutOrStdout()),
	}
	if cmd.Flags().Changed("dialect") {
		provider.Dialect = initDialect
	}
	if cmd.Flags().Changed("use-config-module") {
		useConfig := initUseConfig
		provider.UseConfigModule = &useConfig
	}

	choices, err := prompt.Collect(provider)
	if err != nil {
		return err
	}

	dir := settings.ScaffoldDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}

	console.Log.WithField("dialect", choices.Dialect).
		WithField("config_module", bool(choices.Mode)).
		WithField("dir", dir).
		Debug("rendering scaffold")

	out, err := scaffold.Write(dir, scaffold.Render(choices.Dialect, choices.Mode))
	if err != nil {
		return fmt.Errorf("writing seeder files: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	console.Success(w, "Seeder Folder Created Successfully")
	for _, f := range out.Files {
		if rel, err := filepath.Rel(cwd, f); err == nil {
			f = rel
		}
		fmt.Fprintf(w, "  %s\n", f)
	}
	return nil
}
