package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coffee-miniapp/internal/domain"
)

type memCatalogRepo struct{ docs [][]byte }

func (r *memCatalogRepo) SaveDocument(_ context.Context, raw []byte) (int64, error) {
	r.docs = append(r.docs, raw)
	return int64(len(r.docs)), nil
}

func (r *memCatalogRepo) LatestDocument(context.Context) ([]byte, error) {
	if len(r.docs) == 0 {
		return nil, domain.NotFound("empty")
	}
	return r.docs[len(r.docs)-1], nil
}

func TestImportCatalog(t *testing.T) {
	r := &memCatalogRepo{}
	doc := `{"metadata": {"updated_at": "2025-01-02T14:30:00Z"}, "data": {"Кофе": {"Зерно": [
		{"name": "Kenya", "weight": 1000, "price_final": 1200, "price_original": 1200, "discount": 0, "type": "coffee_beans"},
		{"name": "Ethiopia", "weight": 250, "price_final": 500, "price_original": 600, "discount": 17, "type": "ground_coffee"}
	]}}}`

	id, products, err := importCatalog(context.Background(), r, []byte(doc))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, 2, products)
	assert.Len(t, r.docs, 1)
}

func TestImportCatalogRejectsMalformed(t *testing.T) {
	r := &memCatalogRepo{}
	for _, doc := range []string{`{`, `[]`, `{"Кофе": {"Зерно": "нет"}}`} {
		_, _, err := importCatalog(context.Background(), r, []byte(doc))
		assert.Error(t, err, doc)
	}
	assert.Empty(t, r.docs)
}
