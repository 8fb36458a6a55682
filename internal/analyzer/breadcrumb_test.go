package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasMarkerNearClampsWindow(t *testing.T) {
	// Declaration on line 0 of a two-line file must not scan out of bounds
	lines := []string{"def tiny():", "    pass"}
	assert.False(t, hasMarkerNear(lines, 0))

	lines = []string{"# @codebase-summary: first line", "def tiny():"}
	assert.True(t, hasMarkerNear(lines, 1))
	assert.True(t, hasMarkerNear(lines, 0), "marker on the match line itself counts")
}

func TestHasMarkerNearAnyCommentSyntax(t *testing.T) {
	for _, comment := range []string{
		"// @codebase-summary: slashes",
		"# @codebase-summary: hash",
		"-- @codebase-summary: dashes",
		"/* @codebase-summary: block */",
		"/// @codebase-summary: doc",
	} {
		lines := []string{comment, "fn thing() {"}
		assert.True(t, hasMarkerNear(lines, 1), comment)
	}
}

func TestHasMarkerNearLookaheadLimit(t *testing.T) {
	// Two lines below the declaration is inside the window, three is not
	inside := []string{"def f():", "    x", "    # @codebase-summary: close"}
	assert.True(t, hasMarkerNear(inside, 0))

	outside := []string{"def f():", "    x", "    y", "    # @codebase-summary: too far"}
	assert.False(t, hasMarkerNear(outside, 0))
}
