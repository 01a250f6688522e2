package main

import (
	"fmt"
	"net/http"
	"os"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check API liveness and readiness ([base url])"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := os.Getenv("API_URL")
	if len(args) > 0 {
		baseURL = args[0]
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	printHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := http.Client{Timeout: 5 * time.Second}
	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(&client, baseURL+path); err != nil {
			printErr("%s failed: %v", path, err)
			return err
		}
		duration := time.Since(start)

		if duration > time.Second {
			printWarn("%s slow response time (%v)", path, duration)
		} else {
			printOK("%s passed (response time: %v)", path, duration)
		}
	}

	return nil
}

func checkEndpoint(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
