package locate

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

var seeder = Target{DirName: "database-seeder", EntryFile: "seeder.ts"}

const fallback = "database-seeder/seeder.ts"

func TestResolveNoMatch(t *testing.T) {
	fsys := fstest.MapFS{
		"main.ts":               {Data: []byte("")},
		"users/users.module.ts": {Data: []byte("")},
		"users/dto/create.ts":   {Data: []byte("")},
		"common/guards/auth.ts": {Data: []byte("")},
		"common/database/pg.ts": {Data: []byte("")},
	}

	res := Resolve(fsys, seeder, fallback)
	if res.Path != fallback {
		t.Errorf("Path = %q, want %q", res.Path, fallback)
	}
	if res.Found {
		t.Error("Found should be false")
	}
}

func TestResolveEmptyRoot(t *testing.T) {
	res := Resolve(fstest.MapFS{}, seeder, fallback)
	if res.Path != fallback || res.Found {
		t.Errorf("Resolve(empty) = %+v, want fallback, not found", res)
	}
}

func TestResolveDepthOneReturnsFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"app.module.ts":             {Data: []byte("")},
		"database-seeder/seeder.ts": {Data: []byte("")},
		// A later depth-2 match must not be reached.
		"modules/database-seeder/seeder.ts": {Data: []byte("")},
	}

	res := Resolve(fsys, seeder, "custom/fallback.ts")
	if res.Path != "custom/fallback.ts" {
		t.Errorf("Path = %q, want the fallback", res.Path)
	}
	if !res.Found || res.Depth != 1 {
		t.Errorf("Found/Depth = %v/%d, want true/1", res.Found, res.Depth)
	}
}

func TestResolveDepthTwo(t *testing.T) {
	fsys := fstest.MapFS{
		"app.module.ts":                     {Data: []byte("")},
		"modules/users/users.ts":            {Data: []byte("")},
		"modules/database-seeder/seeder.ts": {Data: []byte("")},
	}

	res := Resolve(fsys, seeder, fallback)
	if want := "modules/database-seeder/seeder.ts"; res.Path != want {
		t.Errorf("Path = %q, want %q", res.Path, want)
	}
	if !res.Found || res.Depth != 2 {
		t.Errorf("Found/Depth = %v/%d, want true/2", res.Found, res.Depth)
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	fsys := fstest.MapFS{
		"alpha/database-seeder/seeder.ts": {Data: []byte("")},
		"beta/database-seeder/seeder.ts":  {Data: []byte("")},
	}

	if got := ResolveEntryPath(fsys, seeder, fallback); got != "alpha/database-seeder/seeder.ts" {
		t.Errorf("ResolveEntryPath() = %q, want the first branch in listing order", got)
	}
}

func TestResolveDepthTwoBeforeLaterDepthOne(t *testing.T) {
	// "a" sorts before "database-seeder", so its child is found first.
	fsys := fstest.MapFS{
		"a/database-seeder/seeder.ts": {Data: []byte("")},
		"database-seeder/seeder.ts":   {Data: []byte("")},
	}

	res := Resolve(fsys, seeder, fallback)
	if res.Path != "a/database-seeder/seeder.ts" || res.Depth != 2 {
		t.Errorf("Resolve() = %+v, want depth-2 match under a/", res)
	}
}

func TestResolveDoesNotDescendPastDepthTwo(t *testing.T) {
	fsys := fstest.MapFS{
		"modules/core/database-seeder/seeder.ts": {Data: []byte("")},
	}

	res := Resolve(fsys, seeder, fallback)
	if res.Path != fallback || res.Found {
		t.Errorf("Resolve() = %+v, want fallback for a depth-3 match", res)
	}
}

func TestResolveMatchesFileNamedLikeTarget(t *testing.T) {
	// The original search compares names only, regardless of entry type.
	fsys := fstest.MapFS{
		"lib/database-seeder": {Data: []byte("not a directory")},
	}

	res := Resolve(fsys, seeder, fallback)
	if res.Path != "lib/database-seeder/seeder.ts" {
		t.Errorf("Path = %q, want lib/database-seeder/seeder.ts", res.Path)
	}
}

func TestTargetFallback(t *testing.T) {
	if got := seeder.Fallback(); got != fallback {
		t.Errorf("Fallback() = %q, want %q", got, fallback)
	}
}

func TestEntryPathOnDisk(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")
	mustMkdir(t, filepath.Join(root, "modules", "database-seeder"))
	mustMkdir(t, filepath.Join(root, "users"))

	res := EntryPath(root, seeder)
	want := filepath.Join(root, "modules", "database-seeder", "seeder.ts")
	if res.Path != want {
		t.Errorf("EntryPath() = %q, want %q", res.Path, want)
	}
}

func TestEntryPathMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "src")

	res := EntryPath(root, seeder)
	want := filepath.Join(root, "database-seeder", "seeder.ts")
	if res.Path != want || res.Found {
		t.Errorf("EntryPath() = %+v, want %q and not found", res, want)
	}
}

func TestEntryPathSymlinkedDirectory(t *testing.T) {
	base := t.TempDir()
	shared := filepath.Join(base, "shared")
	mustMkdir(t, filepath.Join(shared, "database-seeder"))

	root := filepath.Join(base, "src")
	mustMkdir(t, root)
	if err := os.Symlink(shared, filepath.Join(root, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	res := EntryPath(root, seeder)
	want := filepath.Join(root, "linked", "database-seeder", "seeder.ts")
	if res.Path != want {
		t.Errorf("EntryPath() = %q, want %q", res.Path, want)
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
}
