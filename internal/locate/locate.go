package locate

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/seqseed/seqseed/internal/console"
)

// Target names the directory to look for and the entry file inside it.
type Target struct {
	DirName   string // e.g. "database-seeder"
	EntryFile string // e.g. "seeder.ts"
}

// Fallback returns the conventional entry path, <DirName>/<EntryFile>.
func (t Target) Fallback() string {
	return path.Join(t.DirName, t.EntryFile)
}

// Resolution is the outcome of a search. Path is always usable; Found reports
// whether a scaffold directory was actually seen, and Depth where (1 or 2).
type Resolution struct {
	Path  string
	Found bool
	Depth int
}

// Resolve searches fsys for target.DirName. Entries are visited in listing
// order, each top-level entry before its children.
//
// A match at the top level ends the search and yields fallback rather than a
// computed path; for the conventional layout the two are the same file. A match
// one level down yields <entry>/<DirName>/<EntryFile>. No match, or an
// unreadable root, yields fallback with Found=false.
func Resolve(fsys fs.FS, target Target, fallback string) Resolution {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		console.Log.WithError(err).Debug("source root not readable, using fallback")
		return Resolution{Path: fallback}
	}

	for _, entry := range entries {
		if entry.Name() == target.DirName {
			return Resolution{Path: fallback, Found: true, Depth: 1}
		}
		if entry.Type().IsRegular() {
			continue
		}

		children, err := fs.ReadDir(fsys, entry.Name())
		if err != nil {
			// Symlinks to files and unreadable directories end up here.
			continue
		}
		for _, child := range children {
			if child.Name() == target.DirName {
				// First match ends the search; later branches are not scanned.
				return Resolution{
					Path:  path.Join(entry.Name(), target.DirName, target.EntryFile),
					Found: true,
					Depth: 2,
				}
			}
		}
	}

	return Resolution{Path: fallback}
}

// ResolveEntryPath is Resolve without the presence details.
func ResolveEntryPath(fsys fs.FS, target Target, fallback string) string {
	return Resolve(fsys, target, fallback).Path
}

// EntryPath resolves the entry file under the source root directory on disk and
// returns it joined with root, e.g. "src/modules/database-seeder/seeder.ts".
func EntryPath(root string, target Target) Resolution {
	res := Resolve(os.DirFS(root), target, target.Fallback())
	res.Path = filepath.Join(root, filepath.FromSlash(res.Path))
	console.Log.WithField("path", res.Path).
		WithField("found", res.Found).
		WithField("depth", res.Depth).
		Debug("resolved seeder entry")
	return res
}
