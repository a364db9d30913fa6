//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated project.
type testEnv struct {
	ProjectDir string // mock NestJS project root
	BinDir     string // holds the fake runner, prepended to PATH
}

// setupTestEnv creates a project directory with a src/ tree and a fake
// ts-node runner that echoes its argument, and makes the project the
// working directory for the rest of the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if goruntime.GOOS == "windows" {
		t.Skip("fake runner is a shell script")
	}

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}

	writeFile(t, filepath.Join(env.ProjectDir, "src", "main.ts"), "bootstrap();\n")
	writeFile(t, filepath.Join(env.ProjectDir, "src", "users", "users.module.ts"), "export class UsersModule {}\n")

	writeExecutable(t, filepath.Join(env.BinDir, "fake-ts-node"), `#!/bin/sh
if [ ! -f "$1" ]; then
  echo "Cannot find module $1" >&2
  exit 1
fi
echo "seeded from $1"
`)

	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.ProjectDir)
	return env
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	writeFile(t, path, content)
	if err := os.Chmod(path, 0755); err != nil {
		t.Fatalf("chmod %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("%s does not contain %q", path, substr)
	}
}
