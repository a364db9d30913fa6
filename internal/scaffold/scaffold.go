package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("scaffold").ParseFS(templateFS, "templates/*.tmpl"))

// Fixed names of the scaffold directory contents.
const (
	DirName     = "database-seeder"
	EntryFile   = "seeder.ts"
	WiringFile  = "seeder.module.ts"
	ServiceFile = "seeder.service.ts"
)

// ArtifactName is the logical role of a generated file.
type ArtifactName string

const (
	EntryModule   ArtifactName = "entry-module"
	WiringModule  ArtifactName = "wiring-module"
	ServiceModule ArtifactName = "service-module"
)

// Artifact is one generated file.
type Artifact struct {
	Name    ArtifactName
	File    string // file name inside the scaffold directory
	Content []byte
}

// Result is the ordered set of generated artifacts: entry, wiring, service.
type Result struct {
	Artifacts []Artifact
}

// Artifact returns the artifact with the given name, or nil.
func (r *Result) Artifact(name ArtifactName) *Artifact {
	for i := range r.Artifacts {
		if r.Artifacts[i].Name == name {
			return &r.Artifacts[i]
		}
	}
	return nil
}

// templateData holds the variables available to scaffold templates.
type templateData struct {
	Dialect Dialect
}

// wiringTemplate returns the wiring-module template for a config mode. The two
// bodies are complete alternatives, not patches of each other.
func wiringTemplate(mode ConfigMode) string {
	if mode == ConfigService {
		return "module_config.ts.tmpl"
	}
	return "module_env.ts.tmpl"
}

// Render produces the scaffold for the given dialect and config mode. It is
// deterministic and has no side effects. The dialect is interpolated verbatim;
// callers restrict it with ParseDialect.
func Render(dialect Dialect, mode ConfigMode) *Result {
	data := templateData{Dialect: dialect}
	return &Result{
		Artifacts: []Artifact{
			{Name: EntryModule, File: EntryFile, Content: execute("seeder.ts.tmpl", data)},
			{Name: WiringModule, File: WiringFile, Content: execute(wiringTemplate(mode), data)},
			{Name: ServiceModule, File: ServiceFile, Content: execute("seeder.service.ts.tmpl", data)},
		},
	}
}

// execute runs one embedded template. The templates are fixed at compile time
// and only reference .Dialect, so a failure here is a programming error.
func execute(name string, data templateData) []byte {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Sprintf("scaffold: executing template %s: %v", name, err))
	}
	return buf.Bytes()
}
