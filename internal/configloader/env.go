package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/mdsplit/pkg/config"
)

// envVarPrefix is the prefix for all mdsplit environment variables.
const envVarPrefix = "MDSPLIT_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FLAVOR":          {field: "flavor", typ: envTypeString},
	"FRONT_MATTER":    {field: "front_matter", typ: envTypeBool},
	"MAX_LEVEL":       {field: "max_level", typ: envTypeInt},
	"FORMAT":          {field: "output.format", typ: envTypeString},
	"COLOR":           {field: "output.color", typ: envTypeString},
	"JOBS":            {field: "jobs", typ: envTypeInt},
	"EXTENSIONS":      {field: "files.extensions", typ: envTypeSlice},
	"INCLUDE":         {field: "files.include", typ: envTypeSlice},
	"EXCLUDE":         {field: "files.exclude", typ: envTypeSlice},
	"FOLLOW_SYMLINKS": {field: "files.follow_symlinks", typ: envTypeBool},
}

// OverlayFromEnv builds an overlay from environment variables.
// Variables are prefixed with MDSPLIT_ (e.g., MDSPLIT_MAX_LEVEL).
// Unset or empty variables leave the corresponding field nil.
func OverlayFromEnv() (*Overlay, error) {
	overlay := &Overlay{}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(overlay, mapping, value, envVar); err != nil {
			return nil, err
		}
	}

	return overlay, nil
}

// applyEnvValue applies a single environment variable value to the overlay.
func applyEnvValue(overlay *Overlay, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(overlay, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(overlay, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(overlay, mapping.field, i)
	case envTypeSlice:
		return setSliceField(overlay, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the overlay by field path.
func setStringField(overlay *Overlay, field, value string) error {
	switch field {
	case "flavor":
		f := NormalizeFlavor(config.Flavor(value))
		overlay.Flavor = &f
	case "output.format":
		f := config.OutputFormat(value)
		overlay.Output.Format = &f
	case "output.color":
		c := config.ColorMode(value)
		overlay.Output.Color = &c
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the overlay by field path.
func setBoolField(overlay *Overlay, field string, value bool) error {
	switch field {
	case "front_matter":
		overlay.FrontMatter = &value
	case "files.follow_symlinks":
		overlay.Files.FollowSymlinks = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the overlay by field path.
func setIntField(overlay *Overlay, field string, value int) error {
	switch field {
	case "max_level":
		overlay.MaxLevel = &value
	case "jobs":
		overlay.Jobs = &value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the overlay by field path.
func setSliceField(overlay *Overlay, field string, value []string) error {
	switch field {
	case "files.extensions":
		overlay.Files.Extensions = value
	case "files.include":
		overlay.Files.Include = value
	case "files.exclude":
		overlay.Files.Exclude = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"MDSPLIT_FLAVOR":          "Markdown flavor: commonmark or gfm",
		"MDSPLIT_FRONT_MATTER":    "Keep front matter attached to the first section: true or false",
		"MDSPLIT_MAX_LEVEL":       "Deepest heading level that opens a section (0 = all levels)",
		"MDSPLIT_FORMAT":          "Output format: text, json, table, or summary",
		"MDSPLIT_COLOR":           "Color mode: auto, always, or never",
		"MDSPLIT_JOBS":            "Number of parallel workers (0 = auto)",
		"MDSPLIT_EXTENSIONS":      "Comma-separated list of Markdown file extensions",
		"MDSPLIT_INCLUDE":         "Comma-separated list of include glob patterns",
		"MDSPLIT_EXCLUDE":         "Comma-separated list of exclude glob patterns",
		"MDSPLIT_FOLLOW_SYMLINKS": "Follow symlinks during discovery: true or false",
	}
}
