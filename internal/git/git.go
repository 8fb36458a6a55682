// Package git reads repository state for the scan metadata block.
package git

import (
	"github.com/go-git/go-git/v5"
)

// Info describes the repository a scan ran inside.
type Info struct {
	Branch    string `json:"branch,omitempty"`
	Commit    string `json:"commit,omitempty"`
	IsDirty   bool   `json:"is_dirty"`
	RemoteURL string `json:"remote_url,omitempty"`
}

// GetInfo returns repository information for path, or nil when path is not
// inside a git worktree. Status computation walks the tree, so this runs
// once per scan, never per file.
func GetInfo(path string) *Info {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &Info{}

	head, err := repo.Head()
	if err == nil {
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD"
		}
	}

	if worktree, err := repo.Worktree(); err == nil {
		if status, err := worktree.Status(); err == nil {
			info.IsDirty = !status.IsClean()
		}
	}

	if cfg, err := repo.Config(); err == nil {
		if origin := cfg.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = origin.URLs[0]
		}
	}

	return info
}
