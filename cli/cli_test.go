package cli_test

import (
	"testing"

	"github.com/amp-labs/sortedcollections/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidation(t *testing.T) {
	t.Parallel()

	require.Error(t, cli.ValidateNonEmpty("  "))
	require.NoError(t, cli.ValidateNonEmpty("x"))

	require.Error(t, cli.ValidateFloat("ten"))
	require.NoError(t, cli.ValidateFloat(" 2.5 "))

	v, err := cli.ParseFloat("-3")
	require.NoError(t, err)
	assert.InDelta(t, -3.0, v, 0)
}

func TestChoices(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"v1", "v2", "v10"}, cli.Choices("v10", "v2", "v1", "v2"))
	assert.Empty(t, cli.Choices())
}

func TestPrefixSearcher(t *testing.T) {
	t.Parallel()

	names := []string{"[Done]", "alpha", "beta", "alphabet"}
	search := cli.PrefixSearcher(names, 1)

	assert.False(t, search("[", 0))
	assert.False(t, search("", 1))
	assert.True(t, search("alp", 1))
	assert.True(t, search("alp", 3))
	assert.False(t, search("alp", 2))
}
