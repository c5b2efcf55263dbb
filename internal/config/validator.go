package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be non-empty before the admin panel can start
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_BASE_URL",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

const examplePassword = "change_this_secure_password"

// ValidateEnv reports every problem with the environment at once: schema
// version, missing variables and values that cannot be parsed.
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var errs []error
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", ")))
	}

	if raw := os.Getenv("API_BASE_URL"); raw != "" {
		if u, err := url.Parse(raw); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("API_BASE_URL must be an absolute http(s) URL, got %q", raw))
		}
	}
	if tz := os.Getenv("DISPLAY_TIMEZONE"); tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			errs = append(errs, fmt.Errorf("DISPLAY_TIMEZONE %q is not a known IANA zone", tz))
		}
	}

	return errors.Join(errs...)
}

// ValidateEnvWithWarnings runs ValidateEnv and lists settings that work but look unintended
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == examplePassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("API_KEY") == "" {
		warnings = append(warnings, "API_KEY is not set - upstream calls will rely on the admin bearer token only")
	}

	prod := os.Getenv("ENVIRONMENT") == "prod"
	if prod && strings.HasPrefix(os.Getenv("API_BASE_URL"), "http://") {
		warnings = append(warnings, "API_BASE_URL uses plain http in prod")
	}
	if prod && os.Getenv("SESSION_COOKIE_SECURE") != "true" {
		warnings = append(warnings, "SESSION_COOKIE_SECURE is off in prod - session cookies will be sent over plain http")
	}

	return warnings, nil
}
