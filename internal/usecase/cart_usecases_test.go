package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
	"github.com/example/coffee-miniapp/internal/platform/metrics"
)

func TestChangeQuantityRejectsWithAlertAndHighlight(t *testing.T) {
	s := newStore(t, ethiopia)
	var alerts alertLog

	res, err := ChangeQuantity{Store: s, Alerts: &alerts, Metrics: metrics.New()}.Execute("prod_0", 1)
	assert.ErrorIs(t, err, domain.ErrGrindRequired)
	assert.False(t, res.Changed)
	require.NotNil(t, res.Highlight)
	assert.Equal(t, "grind_prod_0", res.Highlight.Control)
	assert.Equal(t, alertLog{"Пожалуйста, выберите помол перед добавлением."}, alerts)

	e, _ := s.Entry("prod_0")
	assert.Zero(t, e.Qty)
}

func TestChangeQuantityUnknownEntry(t *testing.T) {
	s := newStore(t, kenya)
	var alerts alertLog

	res, err := ChangeQuantity{Store: s, Alerts: &alerts}.Execute("prod_42", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, res.Highlight)
	assert.Empty(t, alerts)
}

func TestChangeQuantityAcceptedAndNoop(t *testing.T) {
	s := newStore(t, kenya)

	res, err := ChangeQuantity{Store: s}.Execute("prod_0", 1)
	require.NoError(t, err)
	assert.True(t, res.Changed)

	res, err = ChangeQuantity{Store: s}.Execute("prod_0", 0)
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestSelectGrindAcceptsAliases(t *testing.T) {
	s := newStore(t, ethiopia)

	require.NoError(t, SelectGrind{Store: s}.Execute("prod_0", "Средний"))
	e, _ := s.Entry("prod_0")
	assert.Equal(t, domain.GrindMedium, e.Grind)

	require.NoError(t, SelectGrind{Store: s}.Execute("prod_0", ""))
	e, _ = s.Entry("prod_0")
	assert.Equal(t, domain.GrindNone, e.Grind)

	assert.ErrorIs(t, SelectGrind{Store: s}.Execute("prod_0", "пыль"), domain.ErrValidation)
	assert.ErrorIs(t, SelectGrind{Store: s}.Execute("prod_9", "fine"), domain.ErrNotFound)
}

func TestClearCart(t *testing.T) {
	s := newStore(t, kenya)
	_, _ = s.SetQuantity("prod_0", 3)

	assert.False(t, ClearCart{Store: s, Confirm: domain.ConfirmFunc(func(string) bool { return false })}.Execute())
	assert.True(t, s.HasItems())

	assert.True(t, ClearCart{Store: s, Confirm: domain.ConfirmFunc(func(string) bool { return true })}.Execute())
	assert.False(t, s.HasItems())
}

type stubSource struct {
	cat domain.Catalog
	err error
}

func (s stubSource) Fetch(context.Context) (domain.Catalog, error) { return s.cat, s.err }

func TestLoadMenu(t *testing.T) {
	store := cart.NewStore()
	cat := domain.Catalog{Categories: []domain.Category{{
		Name:          "Coffee",
		Subcategories: []domain.Subcategory{{Name: "Beans", Products: []domain.Product{ethiopia}}},
	}}}

	view, err := LoadMenu{Source: stubSource{cat: cat}, Store: store}.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, view.Error)
	assert.Equal(t, 1, store.Len())
}

func TestLoadMenuFailureLeavesCartEmpty(t *testing.T) {
	store := cart.NewStore()
	src := stubSource{err: domain.Unavailable("Failed to load menu data: HTTP 500", nil)}

	view, err := LoadMenu{Source: src, Store: store, Metrics: metrics.New()}.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnavailable))
	require.NotNil(t, view.Error)
	assert.Contains(t, view.Error.Reason, "HTTP 500")
	assert.Zero(t, store.Len())
	assert.False(t, store.Summary().UI().SubmitEnabled)
}
