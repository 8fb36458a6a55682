package codestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopAnalyzer(t *testing.T) {
	a := NewAnalyzer(false)
	a.ProcessFile("main.go", []byte("package main\n"))

	assert.False(t, a.Enabled())
	assert.Nil(t, a.Stats())
}

func TestSCCAnalyzerCountsGo(t *testing.T) {
	a := NewAnalyzer(true)
	require.True(t, a.Enabled())

	a.ProcessFile("main.go", []byte(`package main

// entry point
func main() {
	println("hi")
}
`))

	stats := a.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Total.Files)
	assert.Greater(t, stats.Total.Lines, int64(0))
	assert.Greater(t, stats.Total.Comments, int64(0))

	require.Len(t, stats.ByLanguage, 1)
	assert.Equal(t, "Go", stats.ByLanguage[0].Language)
}

func TestSCCAnalyzerSortsByLines(t *testing.T) {
	a := NewAnalyzer(true)

	a.ProcessFile("small.py", []byte("x = 1\n"))
	a.ProcessFile("big.go", []byte("package main\n\nfunc a() {}\n\nfunc b() {}\n\nfunc c() {}\n"))

	stats := a.Stats()
	require.Len(t, stats.ByLanguage, 2)
	assert.GreaterOrEqual(t, stats.ByLanguage[0].Lines, stats.ByLanguage[1].Lines)
	assert.Equal(t, 2, stats.Total.Files)
}

func TestSCCAnalyzerSkipsEmptyAndUnknown(t *testing.T) {
	a := NewAnalyzer(true)

	a.ProcessFile("empty.go", nil)
	a.ProcessFile("mystery.zzz", []byte("some text\n"))

	stats := a.Stats()
	assert.Equal(t, 0, stats.Total.Files)
	assert.Empty(t, stats.ByLanguage)
}
