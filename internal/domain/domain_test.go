package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		in    Money
		str   string
		label string
	}{
		{Money(50000), "500", "500 ₽"},
		{Money(45050), "450.50", "450.50 ₽"},
		{Money(5), "0.05", "0.05 ₽"},
		{Money(-1500), "-15", "-15 ₽"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.str, tt.in.String())
			assert.Equal(t, tt.label, tt.in.Label())
			b, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.str, string(b))
		})
	}

	var m Money
	require.NoError(t, json.Unmarshal([]byte(`199.99`), &m))
	assert.Equal(t, Money(19999), m)
	assert.Equal(t, Money(59997), m.Mul(3))
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestProductKind(t *testing.T) {
	assert.Equal(t, KindGround, ProductType("ground_coffee").Kind())
	assert.Equal(t, KindWhole, ProductType("coffee_beans").Kind())
	assert.Equal(t, KindWhole, ProductType("whole_bean").Kind())
	assert.Equal(t, KindOther, ProductType("tea").Kind())
	assert.Equal(t, KindOther, ProductType("").Kind())
}

func TestParseGrindLevel(t *testing.T) {
	for in, want := range map[string]GrindLevel{
		"":         GrindNone,
		"medium":   GrindMedium,
		" Coarse ": GrindCoarse,
		"мелкий":   GrindFine,
		"Средний":  GrindMedium,
	} {
		got, err := ParseGrindLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseGrindLevel("espresso")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "средний", GrindMedium.Short())
	assert.Len(t, GrindLevels, 3)
}

func TestErrors(t *testing.T) {
	err := fmt.Errorf("cart: %w", GrindRequired("Ethiopia"))
	assert.ErrorIs(t, err, ErrGrindRequired)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, "Пожалуйста, выберите помол перед добавлением.", UserMessage(err))

	var de *Error
	require.True(t, errors.As(Unavailable("down", errors.New("dial")), &de))
	assert.Equal(t, http.StatusBadGateway, de.HTTPStatus())
	assert.ErrorIs(t, de, ErrUnavailable)
	assert.Equal(t, http.StatusNotFound, NotFound("x").HTTPStatus())
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestValidatorOrderRules(t *testing.T) {
	v := NewValidator()
	item := OrderItem{Name: "Ethiopia", Quantity: 2, Weight: 250, TotalItemWeight: 500,
		Price: Money(50000), Type: "ground_coffee", GrindLevel: GrindMedium}
	payload := OrderPayload{Name: "Гость", Items: []OrderItem{item}, TotalWeight: 500, TotalPrice: Money(100000)}
	require.NoError(t, v.Struct(payload))

	noGrind := payload
	noGrind.Items = []OrderItem{item}
	noGrind.Items[0].GrindLevel = GrindNone
	assert.Error(t, v.Struct(noGrind))

	tooMany := payload
	tooMany.Items = []OrderItem{item}
	tooMany.Items[0].Quantity = 11
	assert.Error(t, v.Struct(tooMany))

	empty := payload
	empty.Items = nil
	assert.Error(t, v.Struct(empty))

	beans := OrderItem{Name: "Kenya", Quantity: 1, Weight: 1000, TotalItemWeight: 1000,
		Price: Money(120000), Type: "coffee_beans"}
	assert.NoError(t, v.Struct(OrderPayload{Name: "Гость", Items: []OrderItem{beans}}))
}

func TestRequesterDisplayName(t *testing.T) {
	id := int64(7)
	assert.Equal(t, "Анна", Requester{ID: &id, FirstName: "Анна"}.DisplayName("Гость"))
	assert.Equal(t, "Гость", Requester{}.DisplayName("Гость"))
}
