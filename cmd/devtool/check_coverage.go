package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type CheckCoverageCommand struct{}

func (c *CheckCoverageCommand) Name() string {
	return "check-coverage"
}

func (c *CheckCoverageCommand) Description() string {
	return "Run tests with coverage and check against threshold"
}

type coverageConfig struct {
	file      string
	threshold float64
	runTests  bool
	html      bool
	packages  []string
}

func (c *CheckCoverageCommand) Run(args []string) error {
	cfg, err := c.parseConfig(args)
	if err != nil {
		return err
	}

	printHeader(fmt.Sprintf("Checking coverage threshold (%.1f%%)...", cfg.threshold))

	if err := c.ensureCoverage(cfg); err != nil {
		return err
	}

	coverage, err := c.getCoveragePercent(cfg.file)
	if err != nil {
		return err
	}

	printInfo("Total Coverage: %.1f%%", coverage)

	if cfg.html {
		if err := c.generateHTMLReport(cfg.file); err != nil {
			printWarn("Failed to generate HTML report: %v", err)
		}
	}

	if coverage < cfg.threshold {
		printErr("Coverage is below threshold.")
		return fmt.Errorf("coverage below threshold")
	}

	printOK("Coverage meets threshold.")
	return nil
}

// parseConfig reads flags then "[file] [threshold] [packages...]"
func (c *CheckCoverageCommand) parseConfig(args []string) (coverageConfig, error) {
	fs := flag.NewFlagSet("check-coverage", flag.ContinueOnError)
	runTests := fs.Bool("run", false, "Run tests before checking coverage")
	html := fs.Bool("html", false, "Generate an HTML coverage report")

	if err := fs.Parse(args); err != nil {
		return coverageConfig{}, err
	}

	cfg := coverageConfig{
		file:      filepath.Join("logs", defaultCoverage),
		threshold: 80,
		runTests:  *runTests,
		html:      *html,
	}

	positional := fs.Args()
	if len(positional) > 0 {
		cfg.file = filepath.Clean(positional[0])
	}
	if len(positional) > 1 {
		threshold, err := strconv.ParseFloat(positional[1], 64)
		if err != nil {
			return coverageConfig{}, fmt.Errorf("invalid threshold '%s'", positional[1])
		}
		cfg.threshold = threshold
	}
	if len(positional) > 2 {
		cfg.packages = positional[2:]
	}

	// Keep the profile inside the project
	if strings.Contains(cfg.file, "..") || filepath.IsAbs(cfg.file) {
		return coverageConfig{}, fmt.Errorf("invalid path '%s': must be relative and within project", cfg.file)
	}

	return cfg, nil
}

func (c *CheckCoverageCommand) ensureCoverage(cfg coverageConfig) error {
	shouldRun := cfg.runTests || len(cfg.packages) > 0

	if _, err := os.Stat(cfg.file); os.IsNotExist(err) {
		printInfo("Coverage file '%s' not found. Running tests...", cfg.file)
		shouldRun = true
	}

	if !shouldRun {
		return nil
	}

	dir := filepath.Dir(cfg.file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create coverage directory '%s': %w", dir, err)
	}

	printInfo("Running tests with coverage...")

	testArgs := []string{"test"}
	if len(cfg.packages) > 0 {
		testArgs = append(testArgs, cfg.packages...)
	} else {
		testArgs = append(testArgs, "./...")
	}
	testArgs = append(testArgs, "-coverprofile="+cfg.file, "-covermode=atomic", "-race")

	if err := runStreaming("go", testArgs...); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	printOK("Tests passed and coverage profile generated.")
	return nil
}

func (c *CheckCoverageCommand) getCoveragePercent(file string) (float64, error) {
	out, err := commandOutput("go", "tool", "cover", "-func="+file)
	if err != nil {
		return 0, fmt.Errorf("error running go tool cover: %w", err)
	}

	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "total:") {
			continue
		}
		fields := strings.Fields(line)
		pct := strings.TrimSuffix(fields[len(fields)-1], "%")
		coverage, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, fmt.Errorf("could not parse coverage percentage '%s'", pct)
		}
		return coverage, nil
	}

	return 0, fmt.Errorf("could not determine coverage from output")
}

func (c *CheckCoverageCommand) generateHTMLReport(file string) error {
	htmlFile := strings.TrimSuffix(file, ".out") + ".html"

	printInfo("Generating HTML report: %s", htmlFile)
	if err := runQuiet("go", "tool", "cover", "-html="+file, "-o", htmlFile); err != nil {
		return err
	}
	printOK("HTML report generated: %s", htmlFile)
	return nil
}
