package targetver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargets(t *testing.T) {
	tests := []testCase{
		// wildcard filter
		{filter: "any", candidate: "9.9.9", targets: true},
		{filter: "any", candidate: "0.0.0", targets: true},
		{filter: "", candidate: "1.2.3", targets: true},
		// short filter, matching prefix
		{filter: "0.25", candidate: "0.25.2", targets: true},
		{filter: "0.25", candidate: "0.25.0", targets: true},
		{filter: "0.25", candidate: "0.25.99", targets: true},
		{filter: "1.2", candidate: "1.2.0", targets: true},
		// short filter, differing prefix
		{filter: "0.25", candidate: "0.26.0", targets: false},
		{filter: "0.25", candidate: "0.24.99", targets: false},
		{filter: "1.2", candidate: "2.2.0", targets: false},
		// the .99 expansion ceiling: a prefix match accepts any patch, so the
		// ceiling only governs candidates reached through range comparison
		{filter: "0.25", candidate: "0.25.100", targets: true},
		// long filter: compare-equal only
		{filter: "1.2.3", candidate: "1.2.3", targets: true},
		{filter: "1.2.3", candidate: "1.2.4", targets: false},
		{filter: "1.2.3", candidate: "1.3.3", targets: false},
		{filter: "1.2.3", candidate: "1.2.3.0", targets: true, name: "trailing zero orders as equivalent"},
		{filter: "1.2.3", candidate: "1.2.3.4", targets: false, name: "deeper candidate is not compare-equal"},
		// leading-dot fix-up flows through targeting
		{filter: ".5", candidate: "0.5.7", targets: true},
		{filter: ".5", candidate: "0.6.0", targets: false},
		// non-long candidates are rejected
		{
			name:      "short candidate",
			filter:    "1.2.3",
			candidate: "1.2",
			shouldErr: true,
			errorAssertion: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, &IncomparableError{Operation: "targets"})
			},
		},
		{
			name:      "wildcard candidate",
			filter:    "1.2.3",
			candidate: "any",
			shouldErr: true,
			errorAssertion: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, &IncomparableError{Left: "1.2.3", Right: "any"})
			},
		},
		{
			name:      "wildcard filter still requires a long candidate",
			filter:    "any",
			candidate: "1.2",
			shouldErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.tName(), func(t *testing.T) {
			tc.assertTargets(t, NewCache())
		})
	}
}

func TestTargetsIsPureForRepeatedCalls(t *testing.T) {
	cache := NewCache()
	filter, err := cache.Parse("3.1")
	assert.NoError(t, err)
	candidate, err := cache.Parse("3.2.0")
	assert.NoError(t, err)

	first, err := filter.Targets(candidate)
	assert.NoError(t, err)

	// the second call is served from the comparison cache
	second, err := filter.Targets(candidate)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, second)
}
