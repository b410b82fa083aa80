package menu

import "github.com/example/coffee-miniapp/internal/domain"

// Константы поведения клиента.
const (
	// ScrollTopOffset — после какой прокрутки (px) показывать кнопку «наверх».
	ScrollTopOffset = 300
	// GrindHighlightMs — сколько держать подсветку селектора помола.
	GrindHighlightMs = 2000
)

// View — декларативное описание меню для клиента.
type View struct {
	Metadata        *MetadataView  `json:"metadata,omitempty"`
	Categories      []CategoryView `json:"categories"`
	Error           *ErrorPanel    `json:"error,omitempty"`
	ScrollTopOffset int            `json:"scroll_top_offset"`
}

type MetadataView struct {
	UpdatedAt string `json:"updated_at"`
}

// ErrorPanel заменяет область меню, если каталог не загрузился.
type ErrorPanel struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

type CategoryView struct {
	Name          string            `json:"name"`
	Subcategories []SubcategoryView `json:"subcategories"`
}

type SubcategoryView struct {
	Name     string        `json:"name"`
	Products []ProductView `json:"products"`
}

// ProductView — карточка товара, связанная со строкой корзины по ID.
type ProductView struct {
	ID                 string               `json:"id"`
	Title              string               `json:"title"`
	Description        string               `json:"description,omitempty"`
	PriceLabel         string               `json:"price_label"`
	OriginalPriceLabel string               `json:"original_price_label,omitempty"`
	DiscountLabel      string               `json:"discount_label,omitempty"`
	QtyControl         string               `json:"qty_control"`
	GrindControl       string               `json:"grind_control,omitempty"`
	GrindPlaceholder   string               `json:"grind_placeholder,omitempty"`
	GrindOptions       []domain.GrindOption `json:"grind_options,omitempty"`
	Quantity           int                  `json:"quantity"`
	Grind              domain.GrindLevel    `json:"grind,omitempty"`
}

// Highlight — подсказка клиенту подсветить элемент и снять подсветку через ClearAfterMs.
type Highlight struct {
	Control      string `json:"control"`
	ClearAfterMs int    `json:"clear_after_ms"`
}

// GrindHighlight — подсветка селектора помола строки id.
func GrindHighlight(id string) *Highlight {
	return &Highlight{Control: grindControl(id), ClearAfterMs: GrindHighlightMs}
}

func qtyControl(id string) string   { return "qty_" + id }
func grindControl(id string) string { return "grind_" + id }
