package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/mdsplit/pkg/config"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.True(t, cfg.FrontMatter)
	assert.Equal(t, 0, cfg.MaxLevel)
	assert.Equal(t, config.FormatText, cfg.Output.Format)
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
	assert.Equal(t, config.DefaultExtensions(), cfg.Files.Extensions)
	assert.Equal(t, config.DefaultExcludes(), cfg.Files.Exclude)
	assert.False(t, cfg.Files.FollowSymlinks)
	assert.Equal(t, 0, cfg.Jobs)
}

func TestFlavorIsValid(t *testing.T) {
	tests := []struct {
		flavor config.Flavor
		valid  bool
	}{
		{config.FlavorGFM, true},
		{config.FlavorCommonMark, true},
		{config.Flavor("github"), false},
		{config.Flavor(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.flavor), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.flavor.IsValid())
		})
	}
}

func TestOutputFormatIsValid(t *testing.T) {
	tests := []struct {
		format config.OutputFormat
		valid  bool
	}{
		{config.FormatText, true},
		{config.FormatJSON, true},
		{config.FormatTable, true},
		{config.FormatSummary, true},
		{config.OutputFormat("xml"), false},
		{config.OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.format.IsValid())
		})
	}
}

func TestColorModeIsValid(t *testing.T) {
	tests := []struct {
		mode  config.ColorMode
		valid bool
	}{
		{config.ColorAuto, true},
		{config.ColorAlways, true},
		{config.ColorNever, true},
		{config.ColorMode("on"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.IsValid())
		})
	}
}
