// Package catalogsrc — источники каталога: опубликованный документ по HTTP,
// локальный файл и документ из базы.
package catalogsrc

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/example/coffee-miniapp/internal/domain"
)

// maxDocumentSize — предел размера документа в памяти.
const maxDocumentSize = 8 << 20

const loadFailed = "Failed to load menu data"

// HTTPSource — один GET к опубликованному документу меню.
// Без таймаута и повторов: неудача окончательна для сессии.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Client: http.DefaultClient}
}

func (s *HTTPSource) Fetch(ctx context.Context) (domain.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.Catalog{}, domain.Unavailable(loadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Catalog{}, domain.Unavailable(fmt.Sprintf("%s: HTTP %d", loadFailed, resp.StatusCode), nil)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return domain.Catalog{}, domain.Unavailable(loadFailed, err)
	}
	return Parse(body)
}

var _ domain.CatalogSource = (*HTTPSource)(nil)
