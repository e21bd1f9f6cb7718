package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties(t *testing.T) {
	t.Parallel()

	properties, err := Properties()
	require.NoError(t, err)
	require.Len(t, properties, 3)

	for _, p := range properties {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.CurrentValueMMK, float64(0))
		assert.Greater(t, p.SharePriceMMK, float64(0))
	}
}

func TestProperties_ReturnsFreshCopy(t *testing.T) {
	t.Parallel()

	first, err := Properties()
	require.NoError(t, err)
	first[0].Name = "tampered"
	first[0].CurrentValueMMK = 1

	second, err := Properties()
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", second[0].Name)
	assert.Greater(t, second[0].CurrentValueMMK, float64(1))
}

func TestUsers(t *testing.T) {
	t.Parallel()

	users, err := Users()
	require.NoError(t, err)
	require.NotEmpty(t, users)

	seen := map[string]bool{}
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Email)
		assert.NotEmpty(t, u.Password)
		assert.False(t, seen[u.Email], "duplicate seed email %s", u.Email)
		seen[u.Email] = true
	}
}

func TestPortfolios(t *testing.T) {
	t.Parallel()

	portfolios, err := Portfolios()
	require.NoError(t, err)
	// The bundle ships empty; the map must still be usable
	assert.NotNil(t, portfolios)
}
