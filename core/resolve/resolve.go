// core/resolve/resolve.go
package resolve

import (
	"path/filepath"
	"sort"
	"strings"
)

// Structure-model filenames follow <accession>__<origin>-<detail>.<ext>.
// keyDelim separates the accession from the rest; preferredMark tags
// computationally predicted models, which win over alternate models of the
// same accession.
const (
	keyDelim      = "__"
	preferredMark = "__AF-"
)

// Candidate is one structure-model file attributed to an accession.
type Candidate struct {
	Path      string
	Accession string
	Preferred bool
}

// Source returns the provenance tag recorded in summary output.
func (c Candidate) Source() string {
	if c.Preferred {
		return "AF"
	}
	return "SWM"
}

// Key derives the accession from a model file path: the basename up to the
// first "__". A basename without the delimiter is its own key.
func Key(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, keyDelim); i >= 0 {
		return base[:i]
	}
	return base
}

// Group buckets candidate paths by accession. Each bucket is sorted by
// path so selection does not depend on input order.
func Group(paths []string) map[string][]Candidate {
	groups := make(map[string][]Candidate)
	for _, p := range paths {
		c := Candidate{
			Path:      p,
			Accession: Key(p),
			Preferred: strings.Contains(filepath.Base(p), preferredMark),
		}
		groups[c.Accession] = append(groups[c.Accession], c)
	}
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return g[i].Path < g[j].Path })
	}
	return groups
}

// Select picks the representative model for one accession: the first
// preferred candidate if any, else the first candidate outright. The group
// must be non-empty.
func Select(group []Candidate) Candidate {
	for _, c := range group {
		if c.Preferred {
			return c
		}
	}
	return group[0]
}

// Accessions returns the group keys in sorted order so that every walk of
// the groups is reproducible.
func Accessions(groups map[string][]Candidate) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
