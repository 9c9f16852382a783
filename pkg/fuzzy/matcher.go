// Package fuzzy picks a folder preset from a loosely typed name
package fuzzy

import (
	"sort"
	"strings"

	"aria2-integration/pkg/models"
)

// Matcher resolves folder presets by name
type Matcher struct{}

// NewMatcher creates a new fuzzy matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// MatchPreset returns the preset whose id equals query, or else the one whose
// name best matches it. Ties go to the earlier preset.
func (m *Matcher) MatchPreset(query string, presets []models.FolderPreset) (models.FolderPreset, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(presets) == 0 {
		return models.FolderPreset{}, false
	}

	for _, preset := range presets {
		if preset.ID == query {
			return preset, true
		}
	}

	type scoredPreset struct {
		preset models.FolderPreset
		score  float64
	}

	var scored []scoredPreset
	for _, preset := range presets {
		if score := m.calculateScore(query, preset.Name); score > 0 {
			scored = append(scored, scoredPreset{preset: preset, score: score})
		}
	}

	if len(scored) == 0 {
		return models.FolderPreset{}, false
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	return scored[0].preset, true
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == ' ' || r == '/'
	})
}

// calculateScore is the share of name words matched by query words; a name
// merely containing the query scores by length
func (m *Matcher) calculateScore(query, name string) float64 {
	query = strings.ToLower(query)
	name = strings.ToLower(name)

	if name == query {
		return 2.0
	}
	if !strings.Contains(name, query) {
		return 0.0
	}

	nameWords := splitWords(name)
	queryWords := splitWords(query)

	exactMatches := 0
	for _, q := range queryWords {
		for _, n := range nameWords {
			if q == n {
				exactMatches++
				break
			}
		}
	}

	if exactMatches > 0 {
		return 1.0 + float64(exactMatches)/float64(len(nameWords))
	}

	return float64(len(query)) / float64(len(name))
}
