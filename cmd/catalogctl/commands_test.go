package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestValidate_EmbeddedCatalog(t *testing.T) {
	out, err := run(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "devices")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := run(t, "validate", "--catalog", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	out, err := run(t, "score", "iphone-15-pro", "--json")
	require.NoError(t, err)

	var card entity.DeviceScores
	require.NoError(t, json.Unmarshal([]byte(out), &card))
	assert.Equal(t, "iphone-15-pro", card.DeviceID)
	for _, v := range []int{card.Gaming, card.Battery, card.Camera, card.Work, card.Prestige, card.Value} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}

	_, err = run(t, "score", "walkie-talkie")
	assert.ErrorContains(t, err, "not found")
}

func TestRank(t *testing.T) {
	t.Run("at most three matches", func(t *testing.T) {
		out, err := run(t, "rank", "--gaming", "--json")
		require.NoError(t, err)

		var matches []entity.RankedDevice
		require.NoError(t, json.Unmarshal([]byte(out), &matches))
		assert.LessOrEqual(t, len(matches), recommend.MaxMatches)
	})

	t.Run("budget nothing fits", func(t *testing.T) {
		out, err := run(t, "rank", "--budget", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "no matching devices")
	})

	t.Run("priority out of range", func(t *testing.T) {
		_, err := run(t, "rank", "--priority", "101")
		assert.Error(t, err)
	})
}

func TestTrueCost(t *testing.T) {
	out, err := run(t, "true-cost", "--device", "45", "--plan", "34", "--months", "24", "--json")
	require.NoError(t, err)

	var cost recommend.TrueCost
	require.NoError(t, json.Unmarshal([]byte(out), &cost))
	assert.InDelta(t, 1896, cost.Total, 0.001)
	assert.InDelta(t, 79, cost.TrueMonthly, 0.001)
	assert.Len(t, cost.Competitors, 2)

	_, err = run(t, "true-cost", "--plan", "-1")
	assert.Error(t, err)
}
