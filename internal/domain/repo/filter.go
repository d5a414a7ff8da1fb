package repo

import "strings"

// OriginalsOnly drops forks, keeping the relative order of the remaining repositories.
// The result is the canonical list every other view is derived from.
func OriginalsOnly(repos []*Repository) []*Repository {
	originals := make([]*Repository, 0, len(repos))
	for _, r := range repos {
		if r == nil || r.IsFork() {
			continue
		}
		originals = append(originals, r)
	}
	return originals
}

// MatchText narrows repos to those whose name or description contains query,
// ignoring case. An empty query matches everything.
func MatchText(repos []*Repository, query string) []*Repository {
	if query == "" {
		out := make([]*Repository, len(repos))
		copy(out, repos)
		return out
	}

	needle := strings.ToLower(query)
	matched := make([]*Repository, 0, len(repos))
	for _, r := range repos {
		if r.Matches(needle) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Matches reports whether the lower-cased needle occurs in the name or, when present, the description
func (r *Repository) Matches(needle string) bool {
	if strings.Contains(strings.ToLower(r.name.String()), needle) {
		return true
	}
	return r.description != nil && strings.Contains(strings.ToLower(*r.description), needle)
}
