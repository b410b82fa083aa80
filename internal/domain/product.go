package domain

import "strconv"

// ProductType — тип товара в том виде, в каком он записан в каталоге.
type ProductType string

const (
	TypeGroundCoffee ProductType = "ground_coffee"
	TypeCoffeeBeans  ProductType = "coffee_beans"
	TypeWholeBean    ProductType = "whole_bean"
)

// ProductKind — закрытое перечисление видов товара.
// Все проверки (помол, отрисовка селектора) идут через Kind, а не через строки.
type ProductKind int

const (
	KindOther ProductKind = iota
	KindWhole
	KindGround
)

// Kind сводит строковый тип каталога к закрытому перечислению.
func (t ProductType) Kind() ProductKind {
	switch t {
	case TypeGroundCoffee:
		return KindGround
	case TypeCoffeeBeans, TypeWholeBean:
		return KindWhole
	default:
		return KindOther
	}
}

func (k ProductKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindWhole:
		return "whole"
	default:
		return "other"
	}
}

// Product — позиция каталога. После загрузки не меняется.
type Product struct {
	Name          string      `json:"name"`
	Weight        float64     `json:"weight"`
	PriceFinal    Money       `json:"price_final"`
	PriceOriginal Money       `json:"price_original"`
	Discount      float64     `json:"discount"`
	Type          ProductType `json:"type"`
	Description   string      `json:"description,omitempty"`
}

// HasDiscount сообщает, нужно ли показывать старую цену и процент скидки.
func (p Product) HasDiscount() bool {
	return p.Discount > 0
}

// FormatWeight печатает вес без лишних нулей: 250, 0.5.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
