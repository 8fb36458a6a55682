package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsight/docsight/internal/analyzer"
	"github.com/docsight/docsight/internal/config"
)

func TestMergeProjectConfigFillsUnsetFlags(t *testing.T) {
	settings = config.DefaultSettings()

	cfg := &config.ScanConfigFile{Scan: config.ScanConfigSection{
		Exclude:    []string{"generated"},
		IgnoreFile: ".docsightignore",
		Output:     "from-config.json",
	}}
	mergeProjectConfig(scanCmd, cfg)

	assert.Contains(t, settings.ExcludePatterns, "generated")
	assert.Equal(t, ".docsightignore", settings.IgnoreFile)
	assert.Equal(t, "from-config.json", settings.OutputFile)
}

func TestMergeProjectConfigKeepsChangedFlags(t *testing.T) {
	settings = config.DefaultSettings()
	settings.OutputFile = "cli.json"
	require.NoError(t, scanCmd.Flags().Set("output", "cli.json"))

	cfg := &config.ScanConfigFile{Scan: config.ScanConfigSection{
		Output: "from-config.json",
	}}
	mergeProjectConfig(scanCmd, cfg)

	assert.Equal(t, "cli.json", settings.OutputFile, "explicit flag wins over the config file")
}

func TestGuideExamplesCarryMarker(t *testing.T) {
	for _, example := range guideExamples {
		assert.True(t, strings.Contains(example.snippet, analyzer.Marker), example.language)
	}
}
