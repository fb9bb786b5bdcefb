package schema

import (
	"encoding/json"
	"fmt"
	"sort"
)

// StringSet is a set of strings that serializes as a JSON array.
// Marshalling sorts the members so serialization is deterministic, and
// round-trips preserve membership regardless of the serialized order.
type StringSet map[string]struct{}

// NewStringSet builds a set from its members.
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}
	return s
}

// Add inserts a member into the set.
func (s StringSet) Add(member string) {
	s[member] = struct{}{}
}

// Has reports whether member is in the set.
func (s StringSet) Has(member string) bool {
	_, ok := s[member]
	return ok
}

// Sorted returns the members in ascending order.
func (s StringSet) Sorted() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// MarshalJSON implements json.Marshaler.
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var members []string
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*s = NewStringSet(members...)
	return nil
}

// FormatCount renders a count in compact form (982, 1.5k, 2.3M).
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fk", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatNullable renders a nullable counter, with an em dash for
// "source unavailable" so it can never read as a fake zero.
func FormatNullable(n *int) string {
	if n == nil {
		return "—"
	}
	return FormatCount(*n)
}

// Pluralize returns "1 day" or "n days" style phrasing.
func Pluralize(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// TopRepoCommits returns the repo commit attribution sorted by commit count
// descending, limited to at most limit entries.
func TopRepoCommits(repoCommits map[string]int, limit int) []RepoCommitCount {
	ranked := make([]RepoCommitCount, 0, len(repoCommits))
	for name, commits := range repoCommits {
		ranked = append(ranked, RepoCommitCount{Name: name, Commits: commits})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Commits != ranked[j].Commits {
			return ranked[i].Commits > ranked[j].Commits
		}
		return ranked[i].Name < ranked[j].Name
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
