package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

type BenchCommand struct{}

func (c *BenchCommand) Name() string {
	return "bench"
}

func (c *BenchCommand) Description() string {
	return "Run and compare aggregation benchmarks (run, baseline, save, compare)"
}

func (c *BenchCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.run()
	}

	switch args[0] {
	case "run":
		return c.run()
	case "save":
		return c.runAndSave(time.Now().Format("20060102-150405") + ".txt")
	case "baseline":
		return c.runAndSave("baseline.txt")
	case "compare":
		return c.compare()
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
}

func benchArgs() []string {
	return []string{"test", "-run=^$", "-bench=.", "-benchmem", "-count=5", benchHotPackage}
}

func (c *BenchCommand) run() error {
	printHeader("Running aggregation benchmarks...")
	return runStreaming("go", benchArgs()...)
}

// runAndSave runs the benchmarks, teeing output into benchResultsDir/filename
func (c *BenchCommand) runAndSave(filename string) error {
	printHeader("Running benchmarks and saving results...")
	if err := os.MkdirAll(benchResultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(benchResultsDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	cmd := exec.Command("go", benchArgs()...)
	mw := io.MultiWriter(os.Stdout, f)
	cmd.Stdout = mw
	cmd.Stderr = mw

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("benchmark execution failed: %w", err)
	}

	printOK("Results saved to %s", path)
	return nil
}

func (c *BenchCommand) compare() error {
	baseline := filepath.Join(benchResultsDir, "baseline.txt")
	if _, err := os.Stat(baseline); os.IsNotExist(err) {
		return fmt.Errorf("no baseline found. Run 'devtool bench baseline' first")
	}

	current := "current.txt"
	if err := c.runAndSave(current); err != nil {
		return err
	}

	if _, err := exec.LookPath("benchstat"); err == nil {
		return runStreaming("benchstat", baseline, filepath.Join(benchResultsDir, current))
	}

	printWarn("benchstat not installed. Install with: go install golang.org/x/perf/cmd/benchstat@latest")
	fmt.Println("BASELINE:")
	c.printHead(baseline, 5)
	fmt.Println("\nCURRENT:")
	c.printHead(filepath.Join(benchResultsDir, current), 5)
	return nil
}

func (c *BenchCommand) printHead(path string, n int) {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading %s: %v\n", path, err)
		return
	}
	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, "Benchmark") {
			fmt.Println(line)
			count++
			if count >= n {
				break
			}
		}
	}
}
