package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRules(t *testing.T) {
	rs := NewRuleSet()

	tests := []struct {
		path    string
		ignored bool
	}{
		{"node_modules", true},
		{"node_modules/lodash/index.js", true},
		{"client/node_modules/react/index.js", true},
		{".git/HEAD", true},
		{"__pycache__/mod.cpython-312.pyc", true},
		{"vendor/github.com/pkg/errors/errors.go", true},
		{"dist/bundle.js", true},
		{".idea/workspace.xml", true},
		{"src/main.py", false},
		{"internal/scanner/scanner.go", false},
		{"builds/output.txt", false}, // "build" matches segments, not substrings
		{".", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ignored, rs.ShouldIgnore(tt.path), "path %q", tt.path)
	}
}

func TestGlobRules(t *testing.T) {
	rs := NewRuleSet("*.log", "**/__tests__/**", "temp?")

	assert.True(t, rs.ShouldIgnore("debug.log"))
	assert.True(t, rs.ShouldIgnore("logs/server.log"), "glob should match basename at any depth")
	assert.True(t, rs.ShouldIgnore("src/__tests__/helper.js"))
	assert.True(t, rs.ShouldIgnore("temp1"))
	assert.False(t, rs.ShouldIgnore("temp12"))
	assert.False(t, rs.ShouldIgnore("src/main.js"))
}

func TestSubstringRules(t *testing.T) {
	rs := NewRuleSet("generated/proto")

	assert.True(t, rs.ShouldIgnore("api/generated/proto/v1/service.pb.go"))
	assert.False(t, rs.ShouldIgnore("generated/models.go"))
	assert.False(t, rs.ShouldIgnore("proto/service.proto"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	ignorePath := filepath.Join(dir, ".docsightignore")
	content := `# build output
out/
*.tmp

# negation is not supported
!keep.tmp
secrets
`
	require.NoError(t, os.WriteFile(ignorePath, []byte(content), 0644))

	rs := NewRuleSet()
	require.NoError(t, rs.LoadFile(ignorePath))

	assert.True(t, rs.ShouldIgnore("out/app.js"), "trailing slash is trimmed")
	assert.True(t, rs.ShouldIgnore("cache/data.tmp"))
	assert.True(t, rs.ShouldIgnore("keep.tmp"), "negation lines are skipped, union still applies")
	assert.True(t, rs.ShouldIgnore("config/secrets/prod.env"))
}

func TestLoadFileMissing(t *testing.T) {
	rs := NewRuleSet()
	err := rs.LoadFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	// Defaults still active after a failed load
	assert.True(t, rs.ShouldIgnore("node_modules/x.js"))

	// LoadFileOrWarn absorbs the error
	rs.LoadFileOrWarn(filepath.Join(t.TempDir(), "nope"), nil)
	assert.True(t, rs.ShouldIgnore("node_modules/x.js"))
}

func TestCaseSensitivity(t *testing.T) {
	rs := NewRuleSet("Generated")

	assert.True(t, rs.ShouldIgnore("Generated/code.go"))
	assert.False(t, rs.ShouldIgnore("generated/code.go"))
}
