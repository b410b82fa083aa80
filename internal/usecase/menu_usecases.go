package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/menu"
	"github.com/example/coffee-miniapp/internal/platform/logger"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
)

// LoadMenu — загрузить каталог при старте и отрисовать меню.
// При ошибке возвращается панель ошибки, корзина остаётся пустой.
type LoadMenu struct {
	Source  domain.CatalogSource
	Store   *cart.Store
	Log     *logger.Logger
	Metrics *metrics.Metrics
}

func (uc LoadMenu) Execute(ctx context.Context) (menu.View, error) {
	log := orNop(uc.Log)

	cat, err := uc.Source.Fetch(ctx)
	if err != nil {
		uc.Store.Reset()
		uc.Metrics.CatalogLoad(false)
		log.Error("catalog load failed", zap.Error(err))
		return menu.ErrorView(err), err
	}

	view, err := menu.Render(cat, uc.Store)
	if err != nil {
		uc.Store.Reset()
		uc.Metrics.CatalogLoad(false)
		log.Error("menu render failed", zap.Error(err))
		return menu.ErrorView(err), err
	}

	uc.Metrics.CatalogLoad(true)
	log.Info("catalog loaded",
		zap.Int("categories", len(cat.Categories)),
		zap.Int("products", cat.ProductCount()),
	)
	return view, nil
}
