package domain

import "time"

// Metadata — необязательный блок обёртки {metadata, data}.
type Metadata struct {
	UpdatedAt    time.Time
	RawUpdatedAt string
}

// Catalog — разобранный документ меню. Порядок категорий, подкатегорий
// и товаров совпадает с порядком в исходном документе.
type Catalog struct {
	Metadata   *Metadata
	Categories []Category
}

type Category struct {
	Name          string
	Subcategories []Subcategory
}

type Subcategory struct {
	Name     string
	Products []Product
}

// ProductCount — число товаров во всех категориях.
func (c Catalog) ProductCount() int {
	n := 0
	for _, cat := range c.Categories {
		for _, sub := range cat.Subcategories {
			n += len(sub.Products)
		}
	}
	return n
}
