// Package license detects the project license at the scan root.
package license

import (
	"math"
	"sort"

	"github.com/go-enry/go-license-detector/v4/licensedb"
	"github.com/go-enry/go-license-detector/v4/licensedb/filer"
)

// Match is one detected license candidate.
type Match struct {
	License    string  `json:"license"`
	Confidence float64 `json:"confidence"`
	File       string  `json:"file,omitempty"`
}

// Detect scans dir for LICENSE-style files and returns matches above 0.9
// confidence, highest first. A directory without a recognizable license
// returns nil.
func Detect(dir string) []Match {
	fs, err := filer.FromDirectory(dir)
	if err != nil {
		return nil
	}

	detected, err := licensedb.Detect(fs)
	if err != nil {
		return nil
	}

	var matches []Match
	for id, m := range detected {
		if m.Confidence > 0.9 {
			matches = append(matches, Match{
				License:    id,
				Confidence: math.Round(float64(m.Confidence)*100) / 100,
				File:       m.File,
			})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].License < matches[j].License
	})
	return matches
}
