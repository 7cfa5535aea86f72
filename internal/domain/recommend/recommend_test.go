package recommend

import (
	"testing"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Default()
	require.NoError(t, err)

	return c
}

func rankedIDs(ranked []entity.RankedDevice) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.ID
	}

	return out
}
