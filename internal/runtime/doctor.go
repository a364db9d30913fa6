package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the oldest Node.js release the generated seeder supports.
const MinNodeVersion = ">= 16.0.0"

// Check is the outcome of one toolchain probe.
type Check struct {
	Name    string
	Path    string
	Version string
	OK      bool
	Message string
}

// Doctor probes the tools needed by `run`: node (with a version constraint) and
// the runner's own program.
func Doctor(ctx context.Context, runnerCommand string) []Check {
	checks := []Check{checkNode(ctx)}

	fields := strings.Fields(runnerCommand)
	if len(fields) == 0 {
		return append(checks, Check{Name: "runner", Message: "runner command is empty"})
	}
	if fields[0] != "node" {
		checks = append(checks, checkOnPath(fields[0]))
	}
	return checks
}

func checkOnPath(name string) Check {
	path, err := exec.LookPath(name)
	if err != nil {
		return Check{Name: name, Message: fmt.Sprintf("%s not found on PATH", name)}
	}
	return Check{Name: name, Path: path, OK: true, Message: "found"}
}

func checkNode(ctx context.Context) Check {
	c := checkOnPath("node")
	if !c.OK {
		return c
	}

	out, err := exec.CommandContext(ctx, c.Path, "--version").Output()
	if err != nil {
		c.OK = false
		c.Message = fmt.Sprintf("running node --version: %v", err)
		return c
	}
	c.Version = strings.TrimSpace(string(out))

	ok, err := SatisfiesNode(c.Version)
	if err != nil {
		c.OK = false
		c.Message = err.Error()
		return c
	}
	c.OK = ok
	if ok {
		c.Message = "found"
	} else {
		c.Message = fmt.Sprintf("version %s does not satisfy %s", c.Version, MinNodeVersion)
	}
	return c
}

// SatisfiesNode reports whether a `node --version` string meets MinNodeVersion.
// A leading "v" is tolerated.
func SatisfiesNode(version string) (bool, error) {
	constraint, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return constraint.Check(v), nil
}
