package main

import (
	"fmt"
	"os/exec"
	"strings"
)

type CheckDepsCommand struct{}

func (c *CheckDepsCommand) Name() string {
	return "check-deps"
}

func (c *CheckDepsCommand) Description() string {
	return "Check for required development tools"
}

// toolCheck describes one binary and how to read its version
type toolCheck struct {
	name     string
	args     []string
	field    int // index of the version in the first output line, -1 for last
	required bool
	install  string
}

var toolChecks = []toolCheck{
	{name: "go", args: []string{"version"}, field: 2, required: true, install: "https://go.dev/dl/"},
	{name: "docker", args: []string{"--version"}, field: 2, required: false, install: "https://docs.docker.com/get-docker/"},
	{name: "goose", args: []string{"--version"}, field: -1, required: false, install: "go install github.com/pressly/goose/v3/cmd/goose@latest"},
	{name: "swag", args: []string{"--version"}, field: -1, required: false, install: "go install github.com/swaggo/swag/cmd/swag@latest"},
	{name: "benchstat", field: -1, required: false, install: "go install golang.org/x/perf/cmd/benchstat@latest"},
}

func (c *CheckDepsCommand) Run(args []string) error {
	printHeader("Checking dependencies...")

	hasError := false
	for _, tool := range toolChecks {
		if _, err := exec.LookPath(tool.name); err != nil {
			if tool.required {
				printErr("%s not found! Install from: %s", tool.name, tool.install)
				hasError = true
			} else {
				printWarn("%s not found (optional). Install: %s", tool.name, tool.install)
			}
			continue
		}
		out, _ := commandOutput(tool.name, tool.args...)
		printOK("%s installed: %s", tool.name, versionField(out, tool.field))
	}

	if hasError {
		return fmt.Errorf("missing required dependencies")
	}
	return nil
}

// versionField extracts the version token from a tool's output
func versionField(out string, field int) string {
	line := strings.SplitN(out, "\n", 2)[0]
	parts := strings.Fields(line)
	switch {
	case len(parts) == 0:
		return "ok"
	case field == -1:
		return strings.TrimPrefix(parts[len(parts)-1], "version:")
	case field < len(parts):
		return strings.TrimRight(parts[field], ",")
	default:
		return line
	}
}
