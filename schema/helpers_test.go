package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSetRoundTrip(t *testing.T) {
	original := NewStringSet("gamma", "alpha", "beta")

	data, err := json.Marshal(original)
	require.NoError(t, err)
	// Marshalling sorts members for deterministic output.
	assert.JSONEq(t, `["alpha","beta","gamma"]`, string(data))

	var decoded StringSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)

	// Membership survives regardless of serialized order.
	var shuffled StringSet
	require.NoError(t, json.Unmarshal([]byte(`["beta","gamma","alpha"]`), &shuffled))
	assert.Equal(t, original, shuffled)
}

func TestStringSetOperations(t *testing.T) {
	s := NewStringSet()
	assert.False(t, s.Has("x"))
	s.Add("x")
	s.Add("x")
	assert.True(t, s.Has("x"))
	assert.Equal(t, []string{"x"}, s.Sorted())
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want string
	}{
		{"small", 982, "982"},
		{"zero", 0, "0"},
		{"thousands", 1500, "1.5k"},
		{"exact thousand", 1000, "1.0k"},
		{"millions", 2_300_000, "2.3M"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.in))
		})
	}
}

func TestFormatNullable(t *testing.T) {
	assert.Equal(t, "—", FormatNullable(nil))

	zero := 0
	assert.Equal(t, "0", FormatNullable(&zero))

	big := 12_400
	assert.Equal(t, "12.4k", FormatNullable(&big))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 day", Pluralize(1, "day"))
	assert.Equal(t, "0 days", Pluralize(0, "day"))
	assert.Equal(t, "12 days", Pluralize(12, "day"))
}

func TestTopRepoCommits(t *testing.T) {
	repoCommits := map[string]int{
		"alpha": 10,
		"beta":  30,
		"gamma": 20,
		"delta": 30,
	}

	top := TopRepoCommits(repoCommits, 3)
	require.Len(t, top, 3)
	// Ties break alphabetically for stable output.
	assert.Equal(t, RepoCommitCount{Name: "beta", Commits: 30}, top[0])
	assert.Equal(t, RepoCommitCount{Name: "delta", Commits: 30}, top[1])
	assert.Equal(t, RepoCommitCount{Name: "gamma", Commits: 20}, top[2])

	assert.Empty(t, TopRepoCommits(nil, 5))
}
