package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// RequiredEnvVars returns the variables that must be set for a storage
// backend. In-memory plans need no database settings and no schema pin.
func RequiredEnvVars(storage string) []string {
	if storage == StorageMemory {
		return []string{"API_KEY"}
	}
	return []string{
		"ENV_SCHEMA_VERSION",
		"API_KEY",
		"DB_USER",
		"DB_PASSWORD",
		"DB_HOST",
		"DB_PORT",
		"DB_NAME",
	}
}

// DiscordRequiredEnvVars lists the variables the Discord companion needs
var DiscordRequiredEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"API_URL",
	"API_KEY",
}

// formatCheck rejects a value that Load would otherwise replace with its
// default without a word.
type formatCheck struct {
	key   string
	check func(string) error
}

var formatChecks = []formatCheck{
	{key: "REQUIREMENT_CACHE_SIZE", check: checkPositiveInt},
	{key: "REQUIREMENT_CACHE_TTL", check: checkDuration},
	{key: "DB_PORT", check: checkPort},
}

// ValidateEnv checks the server environment for the selected storage backend
func ValidateEnv(storage string) error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	if missing := missingVars(RequiredEnvVars(storage)); len(missing) > 0 {
		if schemaVersion == "" && storage != StorageMemory {
			return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
		}
		return fmt.Errorf("missing required environment variables for %s storage: %s", storage, strings.Join(missing, ", "))
	}

	var invalid []string
	for _, fc := range formatChecks {
		value, ok := os.LookupEnv(fc.key)
		if !ok {
			continue
		}
		if err := fc.check(value); err != nil {
			invalid = append(invalid, fmt.Sprintf("%s (%v)", fc.key, err))
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid environment values: %s", strings.Join(invalid, "; "))
	}

	return nil
}

// ValidateDiscordEnv checks the variables needed by the Discord companion
func ValidateDiscordEnv() error {
	if missing := missingVars(DiscordRequiredEnvVars); len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	apiURL, err := url.Parse(os.Getenv("API_URL"))
	if err != nil || (apiURL.Scheme != "http" && apiURL.Scheme != "https") || apiURL.Host == "" {
		return fmt.Errorf("API_URL must be an absolute http(s) URL, got %q", os.Getenv("API_URL"))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports settings that work
// but are probably a mistake.
func ValidateEnvWithWarnings(storage string) ([]string, error) {
	if err := ValidateEnv(storage); err != nil {
		return nil, err
	}

	var warnings []string

	if storage == StoragePostgres && os.Getenv("DB_PASSWORD") == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if storage == StorageMemory && isProduction(os.Getenv("ENVIRONMENT")) {
		warnings = append(warnings, "STORAGE=memory in production - plans and favorites are lost on restart")
	}

	if ttl, ok := os.LookupEnv("REQUIREMENT_CACHE_TTL"); ok {
		if d, err := time.ParseDuration(ttl); err == nil && d <= 0 {
			warnings = append(warnings, "REQUIREMENT_CACHE_TTL is not positive - cached requirements only leave the cache on plan edits or eviction")
		}
	}

	return warnings, nil
}

func missingVars(keys []string) []string {
	var missing []string
	for _, key := range keys {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case "prod", "production":
		return true
	}
	return false
}

func checkPositiveInt(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return errors.New("not an integer")
	}
	if n <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func checkDuration(value string) error {
	if _, err := time.ParseDuration(value); err != nil {
		return errors.New("not a duration, use a form like 5m or 30s")
	}
	return nil
}

func checkPort(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 65535 {
		return errors.New("not a port number")
	}
	return nil
}
