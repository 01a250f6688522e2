package main

import (
	"fmt"
	"sort"
)

const (
	defaultAPIURL     = "http://localhost:8080"
	defaultCoverage   = "coverage.out"
	benchResultsDir   = "benchmarks/results"
	benchHotPackage   = "./internal/planning/..."
	demoAccount       = "demo"
	migrationsRelPath = "internal/database/migrations"
)

// Command interface that all devtool commands must implement
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the registered commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp() {
	fmt.Println("Usage: devtool <command> [args...]")
	fmt.Println("\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > maxLen {
			maxLen = len(cmd.Name())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Name()) + 2
		fmt.Printf("  %s%*s%s\n", cmd.Name(), padding, "", cmd.Description())
	}
}

// Terminal output

const (
	ansiGreen  = "\033[0;32m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[1;33m"
	ansiBlue   = "\033[0;34m"
	ansiReset  = "\033[0m"
)

func printStatus(color, symbol, format string, a ...interface{}) {
	fmt.Printf("%s%s %s%s\n", color, symbol, fmt.Sprintf(format, a...), ansiReset)
}

func printInfo(format string, a ...interface{}) { printStatus(ansiBlue, "ℹ", format, a...) }

func printOK(format string, a ...interface{}) { printStatus(ansiGreen, "✓", format, a...) }

func printWarn(format string, a ...interface{}) { printStatus(ansiYellow, "⚠", format, a...) }

func printErr(format string, a ...interface{}) { printStatus(ansiRed, "✗", format, a...) }

func printHeader(title string) {
	fmt.Printf("\n%s=== %s ===%s\n", ansiYellow, title, ansiReset)
}
