// Package project resolves a human-readable project name for the scan
// metadata from the build manifests at the scan root.
package project

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Resolve returns the project name for dir. It tries go.mod first, then
// package.json, then falls back to the directory basename.
func Resolve(dir string) string {
	if name := fromGoMod(filepath.Join(dir, "go.mod")); name != "" {
		return name
	}
	if name := fromPackageJSON(filepath.Join(dir, "package.json")); name != "" {
		return name
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Base(dir)
	}
	return filepath.Base(abs)
}

func fromGoMod(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return ""
	}
	return path.Base(modulePath)
}

func fromPackageJSON(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	var manifest struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Name
}
