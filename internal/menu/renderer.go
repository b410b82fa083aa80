// Package menu — дерево меню для клиента; каждая карточка связана со строкой корзины.
package menu

import (
	"fmt"
	"strconv"
	"time"

	"github.com/example/coffee-miniapp/internal/cart"
	"github.com/example/coffee-miniapp/internal/domain"
)

const loadErrorMessage = "Ошибка загрузки меню. Попробуйте позже."

// idGen выдаёт id строк корзины; новый на каждый проход отрисовки.
type idGen struct{ next int }

func (g *idGen) id() string {
	id := fmt.Sprintf("prod_%d", g.next)
	g.next++
	return id
}

// Render строит дерево меню и заново заполняет store: одна строка на товар.
// Прежние строки store удаляются, id начинаются с prod_0.
func Render(cat domain.Catalog, store *cart.Store) (View, error) {
	store.Reset()
	ids := &idGen{}

	v := View{ScrollTopOffset: ScrollTopOffset, Categories: make([]CategoryView, 0, len(cat.Categories))}
	if cat.Metadata != nil {
		v.Metadata = &MetadataView{UpdatedAt: formatMetadata(cat.Metadata)}
	}

	for _, c := range cat.Categories {
		cv := CategoryView{Name: c.Name, Subcategories: make([]SubcategoryView, 0, len(c.Subcategories))}
		for _, sub := range c.Subcategories {
			sv := SubcategoryView{Name: sub.Name, Products: make([]ProductView, 0, len(sub.Products))}
			for _, p := range sub.Products {
				id := ids.id()
				if err := store.Add(domain.NewCartEntry(id, p)); err != nil {
					return View{}, err
				}
				sv.Products = append(sv.Products, productView(id, p))
			}
			cv.Subcategories = append(cv.Subcategories, sv)
		}
		v.Categories = append(v.Categories, cv)
	}

	store.Refresh()
	return v, nil
}

// ErrorView — панель ошибки вместо меню.
func ErrorView(err error) View {
	return View{
		Categories:      []CategoryView{},
		ScrollTopOffset: ScrollTopOffset,
		Error:           &ErrorPanel{Message: loadErrorMessage, Reason: domain.UserMessage(err)},
	}
}

// WithState возвращает копию view с текущими количеством и помолом из store.
func (v View) WithState(store *cart.Store) View {
	out := v
	out.Categories = make([]CategoryView, len(v.Categories))
	for i, c := range v.Categories {
		cc := CategoryView{Name: c.Name, Subcategories: make([]SubcategoryView, len(c.Subcategories))}
		for j, sub := range c.Subcategories {
			sc := SubcategoryView{Name: sub.Name, Products: make([]ProductView, len(sub.Products))}
			for k, p := range sub.Products {
				if e, ok := store.Entry(p.ID); ok {
					p.Quantity = e.Qty
					p.Grind = e.Grind
				}
				sc.Products[k] = p
			}
			cc.Subcategories[j] = sc
		}
		out.Categories[i] = cc
	}
	return out
}

func productView(id string, p domain.Product) ProductView {
	pv := ProductView{
		ID:          id,
		Title:       fmt.Sprintf("%s - %sг", p.Name, domain.FormatWeight(p.Weight)),
		Description: p.Description,
		PriceLabel:  p.PriceFinal.Label(),
		QtyControl:  qtyControl(id),
	}
	if p.HasDiscount() {
		pv.OriginalPriceLabel = p.PriceOriginal.Label()
		pv.DiscountLabel = "-" + strconv.FormatFloat(p.Discount, 'f', -1, 64) + "%"
	}
	switch p.Type.Kind() {
	case domain.KindGround:
		pv.GrindControl = grindControl(id)
		pv.GrindPlaceholder = domain.GrindPlaceholder
		pv.GrindOptions = domain.GrindLevels
	case domain.KindWhole, domain.KindOther:
	}
	return pv
}

var ruShortMonths = [...]string{
	"янв.", "февр.", "мар.", "апр.", "мая", "июн.",
	"июл.", "авг.", "сент.", "окт.", "нояб.", "дек.",
}

func formatMetadata(m *domain.Metadata) string {
	if m.UpdatedAt.IsZero() {
		return m.RawUpdatedAt
	}
	return FormatUpdatedAt(m.UpdatedAt)
}

// FormatUpdatedAt печатает дату в коротком формате ru-RU: «02 янв. 2025 г., 14:30».
func FormatUpdatedAt(t time.Time) string {
	return fmt.Sprintf("%02d %s %d г., %02d:%02d",
		t.Day(), ruShortMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
