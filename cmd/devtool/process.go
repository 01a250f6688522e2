package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// shellMeta are argument fragments refused before spawning a process.
// Plain '&' and ';' stay allowed for connection strings and SQL.
var shellMeta = []string{"|", "`", "$(", "&&", "||", ">", "<"}

// rejectShellMeta refuses arguments that could split or redirect a command
// if they ever reach a shell: line breaks, NUL bytes and shellMeta.
func rejectShellMeta(args ...string) error {
	for _, arg := range args {
		if strings.ContainsAny(arg, "\n\r\x00") {
			return fmt.Errorf("refusing argument %q: control characters", arg)
		}
		for _, meta := range shellMeta {
			if strings.Contains(arg, meta) {
				return fmt.Errorf("refusing argument %q: contains %q", arg, meta)
			}
		}
	}
	return nil
}

func newProcess(name string, args ...string) (*exec.Cmd, error) {
	if err := rejectShellMeta(append([]string{name}, args...)...); err != nil {
		return nil, err
	}
	// #nosec G204 - arguments are screened by rejectShellMeta
	return exec.Command(name, args...), nil
}

// commandOutput runs name and returns its trimmed stdout
func commandOutput(name string, args ...string) (string, error) {
	cmd, err := newProcess(name, args...)
	if err != nil {
		return "", err
	}
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// runQuiet runs name discarding its output
func runQuiet(name string, args ...string) error {
	cmd, err := newProcess(name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// runStreaming runs name with its output attached to the terminal
func runStreaming(name string, args ...string) error {
	cmd, err := newProcess(name, args...)
	if err != nil {
		return err
	}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
