package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/showroom/internal/logging"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "output.format")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidOutputFormats returns the list of valid list output formats
func ValidOutputFormats() []string {
	return []string{"text", "json", "yaml"}
}

// ValidThemes returns the list of built-in TUI themes
func ValidThemes() []string {
	return []string{"default", "mono"}
}

// maxNameWidthLimit keeps rows readable on any terminal
const maxNameWidthLimit = 200

// Validate checks the ambient settings and returns every problem found.
// Catalogue items are taken as given.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme != "" && !slices.Contains(ValidThemes(), c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidThemes(), ", ")),
		})
	}

	if c.TUI.MaxNameWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.max_name_width",
			Value:   c.TUI.MaxNameWidth,
			Message: "must be non-negative",
		})
	}
	if c.TUI.MaxNameWidth > maxNameWidthLimit {
		errors = append(errors, ValidationError{
			Field:   "tui.max_name_width",
			Value:   c.TUI.MaxNameWidth,
			Message: fmt.Sprintf("exceeds maximum of %d columns", maxNameWidthLimit),
		})
	}

	return errors
}

func (c *Config) validateOutput() []ValidationError {
	if c.Output.Format == "" || IsValidOutputFormat(c.Output.Format) {
		return nil
	}
	return []ValidationError{{
		Field:   "output.format",
		Value:   c.Output.Format,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidOutputFormats(), ", ")),
	}}
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level == "" || slices.Contains(logging.ValidLevels(), strings.ToUpper(c.Logging.Level)) {
		return nil
	}
	return []ValidationError{{
		Field:   "logging.level",
		Value:   c.Logging.Level,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
	}}
}

// IsValidOutputFormat checks if the given list format is supported
func IsValidOutputFormat(format string) bool {
	return slices.Contains(ValidOutputFormats(), format)
}
