package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFromGoMod(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"),
		[]byte("module github.com/acme/widget-service\n\ngo 1.25\n"), 0644))

	assert.Equal(t, "widget-service", Resolve(dir))
}

func TestResolveFromPackageJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "frontend-app", "version": "2.0.0"}`), 0644))

	assert.Equal(t, "frontend-app", Resolve(dir))
}

func TestResolveGoModWinsOverPackageJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"),
		[]byte("module example.com/backend\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"name": "frontend"}`), 0644))

	assert.Equal(t, "backend", Resolve(dir))
}

func TestResolveFallsBackToDirName(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Base(dir), Resolve(dir))
}

func TestResolveIgnoresBrokenManifests(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("not a modfile"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{broken"), 0644))

	assert.Equal(t, filepath.Base(dir), Resolve(dir))
}
