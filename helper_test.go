package targetver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name           string
	filter         string
	candidate      string
	targets        bool
	shouldErr      bool
	errorAssertion func(t *testing.T, err error)
}

func (c *testCase) tName() string {
	if c.name != "" {
		return c.name
	}

	return fmt.Sprintf("filter='%s'candidate='%s'", c.filter, c.candidate)
}

func (c *testCase) assertTargets(t *testing.T, cache *Cache) {
	t.Helper()

	filter, err := cache.Parse(c.filter)
	require.NoError(t, err, "unexpected error parsing filter: %v", err)

	candidate, err := cache.Parse(c.candidate)
	require.NoError(t, err, "unexpected error parsing candidate: %v", err)

	actual, err := filter.Targets(candidate)
	if c.shouldErr {
		if c.errorAssertion != nil {
			c.errorAssertion(t, err)
		} else {
			assert.Error(t, err)
		}
		return
	}
	assert.NoError(t, err, "unexpected error from Targets: %v", err)
	assert.Equal(t, c.targets, actual, "unexpected targeting result")
}
