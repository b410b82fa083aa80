package catalogsrc

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/example/coffee-miniapp/internal/domain"
)

var updatedAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse разбирает документ каталога. Принимаются обе формы:
// голое дерево «категория → подкатегория → []товар» и обёртка {metadata, data}.
// Порядок ключей документа сохраняется.
func Parse(raw []byte) (domain.Catalog, error) {
	if !gjson.ValidBytes(raw) {
		return domain.Catalog{}, domain.Validation("некорректный JSON каталога")
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return domain.Catalog{}, domain.Validation("каталог должен быть JSON-объектом")
	}

	var cat domain.Catalog
	if meta := root.Get("metadata"); meta.IsObject() {
		cat.Metadata = parseMetadata(meta)
	}

	body := root
	wrapped := false
	if data := root.Get("data"); data.IsObject() {
		body = data
		wrapped = true
	}

	var err error
	body.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if !wrapped && name == "metadata" {
			return true
		}
		var c domain.Category
		c, err = parseCategory(name, value)
		if err != nil {
			return false
		}
		cat.Categories = append(cat.Categories, c)
		return true
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

func parseMetadata(meta gjson.Result) *domain.Metadata {
	raw := strings.TrimSpace(meta.Get("updated_at").String())
	m := &domain.Metadata{RawUpdatedAt: raw}
	for _, layout := range updatedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			m.UpdatedAt = t
			break
		}
	}
	return m
}

func parseCategory(name string, value gjson.Result) (domain.Category, error) {
	if !value.IsObject() {
		return domain.Category{}, domain.Validation(fmt.Sprintf("категория %q: ожидался объект подкатегорий", name))
	}
	c := domain.Category{Name: name}
	var err error
	value.ForEach(func(key, products gjson.Result) bool {
		sub := domain.Subcategory{Name: key.String()}
		if !products.IsArray() {
			err = domain.Validation(fmt.Sprintf("подкатегория %q/%q: ожидался список товаров", name, sub.Name))
			return false
		}
		for i, p := range products.Array() {
			if !p.IsObject() {
				err = domain.Validation(fmt.Sprintf("подкатегория %q/%q: товар #%d не объект", name, sub.Name, i))
				return false
			}
			sub.Products = append(sub.Products, parseProduct(p))
		}
		c.Subcategories = append(c.Subcategories, sub)
		return true
	})
	return c, err
}

func parseProduct(p gjson.Result) domain.Product {
	return domain.Product{
		Name:          p.Get("name").String(),
		Weight:        p.Get("weight").Float(),
		PriceFinal:    domain.MoneyFromFloat(p.Get("price_final").Float()),
		PriceOriginal: domain.MoneyFromFloat(p.Get("price_original").Float()),
		Discount:      p.Get("discount").Float(),
		Type:          domain.ProductType(p.Get("type").String()),
		Description:   p.Get("description").String(),
	}
}
