package catalogsrc

import (
	"context"
	"fmt"
	"os"

	"github.com/example/coffee-miniapp/internal/domain"
)

// FileSource читает документ меню с диска, для локальной разработки.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) (domain.Catalog, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return domain.Catalog{}, domain.Unavailable(fmt.Sprintf("%s: %s", loadFailed, s.Path), err)
	}
	return Parse(raw)
}

// StoredSource берёт последний сохранённый документ из репозитория.
type StoredSource struct {
	Repo domain.CatalogRepository
}

func (s StoredSource) Fetch(ctx context.Context) (domain.Catalog, error) {
	raw, err := s.Repo.LatestDocument(ctx)
	if err != nil {
		return domain.Catalog{}, domain.Unavailable(loadFailed, err)
	}
	return Parse(raw)
}

var (
	_ domain.CatalogSource = FileSource{}
	_ domain.CatalogSource = StoredSource{}
)
