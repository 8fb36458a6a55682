package provider

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/docsight/docsight/internal/types"
)

// FakeProvider implements the Provider interface in memory, for testing
type FakeProvider struct {
	files   map[string][]types.File
	content map[string]string
}

// NewFakeProvider creates an empty fake provider rooted at "."
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		files:   map[string][]types.File{".": {}},
		content: make(map[string]string),
	}
}

// AddFile registers a file with content, creating parent directories
func (p *FakeProvider) AddFile(path, content string) {
	path = filepath.Clean(path)
	p.ensureDirs(filepath.Dir(path))

	dir := filepath.Dir(path)
	p.files[dir] = append(p.files[dir], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: "file",
		Size: int64(len(content)),
	})
	p.content[path] = content
}

// AddDir registers an empty directory, creating parents
func (p *FakeProvider) AddDir(path string) {
	p.ensureDirs(filepath.Clean(path))
}

// ensureDirs creates the directory chain up to dir and links each level
// into its parent listing
func (p *FakeProvider) ensureDirs(dir string) {
	if dir == "." || dir == "/" {
		return
	}
	if _, exists := p.files[dir]; exists {
		return
	}

	parent := filepath.Dir(dir)
	p.ensureDirs(parent)

	p.files[dir] = []types.File{}
	p.files[parent] = append(p.files[parent], types.File{
		Name: filepath.Base(dir),
		Path: dir,
		Type: "dir",
	})
}

// ListDir returns the contents of a directory
func (p *FakeProvider) ListDir(path string) ([]types.File, error) {
	return p.files[filepath.Clean(path)], nil
}

// ReadFile reads file content as bytes
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	content, ok := p.content[filepath.Clean(path)]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, fs.ErrNotExist)
	}
	return []byte(content), nil
}

// Exists checks if a file or directory exists
func (p *FakeProvider) Exists(path string) (bool, error) {
	path = filepath.Clean(path)
	_, fileExists := p.content[path]
	_, dirExists := p.files[path]
	return fileExists || dirExists, nil
}

// IsDir checks if a path is a directory
func (p *FakeProvider) IsDir(path string) (bool, error) {
	_, exists := p.files[filepath.Clean(path)]
	return exists, nil
}

// GetBasePath returns the base path for this provider
func (p *FakeProvider) GetBasePath() string {
	return "."
}
