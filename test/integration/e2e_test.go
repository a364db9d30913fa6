//go:build integration

package integration_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqseed/seqseed/internal/config"
	"github.com/seqseed/seqseed/internal/locate"
	"github.com/seqseed/seqseed/internal/prompt"
	"github.com/seqseed/seqseed/internal/runtime"
	"github.com/seqseed/seqseed/internal/scaffold"
)

var seederTarget = locate.Target{DirName: scaffold.DirName, EntryFile: scaffold.EntryFile}

func TestFullFlowInitThenRun(t *testing.T) {
	env := setupTestEnv(t)

	settings, err := config.Load(env.ProjectDir)
	if err != nil {
		t.Fatalf("loading settings: %v", err)
	}

	choices, err := prompt.Collect(prompt.Fixed{Dialect: scaffold.Postgres, UseConfigModule: false})
	if err != nil {
		t.Fatal(err)
	}
	out, err := scaffold.Write(settings.ScaffoldDir, scaffold.Render(choices.Dialect, choices.Mode))
	if err != nil {
		t.Fatalf("writing scaffold: %v", err)
	}
	if len(out.Files) != 3 {
		t.Fatalf("wrote %d files, want 3", len(out.Files))
	}

	wiring := filepath.Join(env.ProjectDir, "src", "database-seeder", "seeder.module.ts")
	assertFileContains(t, wiring, "dialect: 'postgres'")
	assertFileContains(t, wiring, "process.env.DATABASE_NAME")

	res := locate.EntryPath(settings.SourceRoot, seederTarget)
	if !res.Found || res.Depth != 1 {
		t.Errorf("resolution = %+v, want found at depth 1", res)
	}
	assertFileExists(t, res.Path)

	output, err := runtime.NewCommandRunner("fake-ts-node", env.ProjectDir).Run(context.Background(), res.Path)
	if err != nil {
		t.Fatalf("running seeder: %v", err)
	}
	if !strings.Contains(output.Stdout, "seeded from src/database-seeder/seeder.ts") {
		t.Errorf("unexpected runner output: %q", output.Stdout)
	}
}

func TestFullFlowRelocatedSeeder(t *testing.T) {
	env := setupTestEnv(t)

	dir := filepath.Join("src", "modules", "database-seeder")
	if _, err := scaffold.Write(dir, scaffold.Render(scaffold.SQLite, scaffold.ConfigService)); err != nil {
		t.Fatal(err)
	}

	res := locate.EntryPath("src", seederTarget)
	if want := filepath.Join("src", "modules", "database-seeder", "seeder.ts"); res.Path != want {
		t.Fatalf("entry path = %q, want %q", res.Path, want)
	}

	if _, err := runtime.NewCommandRunner("fake-ts-node", env.ProjectDir).Run(context.Background(), res.Path); err != nil {
		t.Fatalf("running relocated seeder: %v", err)
	}
}

func TestFullFlowRunWithoutInit(t *testing.T) {
	env := setupTestEnv(t)

	res := locate.EntryPath("src", seederTarget)
	if res.Found {
		t.Fatalf("resolution = %+v, want not found", res)
	}

	out, err := runtime.NewCommandRunner("fake-ts-node", env.ProjectDir).Run(context.Background(), res.Path)
	if err == nil {
		t.Fatal("expected the runner to fail for a missing entry file")
	}
	if out.ExitCode != 1 || !strings.Contains(out.Stderr, "Cannot find module") {
		t.Errorf("output = %+v", out)
	}
	if errors.Is(err, runtime.ErrStderr) {
		t.Error("a non-zero exit should be reported as an exit failure")
	}
}

func TestFullFlowSettingsRelocateScaffold(t *testing.T) {
	env := setupTestEnv(t)

	if err := config.Set(env.ProjectDir, config.KeyScaffoldDir, "src/db/database-seeder"); err != nil {
		t.Fatal(err)
	}
	settings, err := config.Load(env.ProjectDir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := scaffold.Write(settings.ScaffoldDir, scaffold.Render(scaffold.MySQL, scaffold.DirectEnv)); err != nil {
		t.Fatal(err)
	}

	res := locate.EntryPath(settings.SourceRoot, seederTarget)
	assertFileExists(t, res.Path)
	if _, err := os.Stat(filepath.Join("src", "database-seeder")); !errors.Is(err, os.ErrNotExist) {
		t.Error("default scaffold directory should not be created")
	}
}
