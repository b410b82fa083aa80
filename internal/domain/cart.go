package domain

// CartEntry — строка корзины, созданная для одного отрисованного товара.
// Name, Price, Weight и Type копируются из Product и дальше не меняются.
type CartEntry struct {
	ID     string
	Name   string
	Price  Money
	Weight float64
	Type   ProductType

	Qty   int
	Grind GrindLevel
}

// NewCartEntry создаёт пустую строку корзины для товара.
func NewCartEntry(id string, p Product) CartEntry {
	return CartEntry{
		ID:     id,
		Name:   p.Name,
		Price:  p.PriceFinal,
		Weight: p.Weight,
		Type:   p.Type,
	}
}

// Active — строка участвует в сумме и в заказе.
func (e CartEntry) Active() bool {
	return e.Qty > 0
}

// LineTotal — цена × количество.
func (e CartEntry) LineTotal() Money {
	return e.Price.Mul(e.Qty)
}

// LineWeight — вес единицы × количество.
func (e CartEntry) LineWeight() float64 {
	return e.Weight * float64(e.Qty)
}

// NeedsGrind — молотый кофе без выбранного помола.
func (e CartEntry) NeedsGrind() bool {
	return e.Type.Kind() == KindGround && e.Grind == GrindNone
}
