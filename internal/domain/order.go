package domain

// Requester — личность пользователя из initDataUnsafe.user хост-платформы.
type Requester struct {
	ID        *int64 `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// DisplayName выбирает имя для заказа; без данных пользователя — guest.
func (r Requester) DisplayName(guest string) string {
	switch {
	case r.FirstName != "":
		return r.FirstName
	case r.Username != "":
		return r.Username
	default:
		return guest
	}
}

// OrderItem — позиция отправляемого заказа.
type OrderItem struct {
	Name            string      `json:"name"`
	Quantity        int         `json:"quantity" validate:"min=1,max=10"`
	Weight          float64     `json:"weight" validate:"min=0"`
	TotalItemWeight float64     `json:"total_item_weight" validate:"min=0"`
	Price           Money       `json:"price"`
	Type            ProductType `json:"type"`
	GrindLevel      GrindLevel  `json:"grind_level,omitempty" validate:"omitempty,grind_level"`
}

// OrderPayload — данные, которые уходят в мост хост-платформы.
// Собирается заново при каждой попытке отправки и нигде не хранится.
type OrderPayload struct {
	Name        string      `json:"name" validate:"required"`
	UserID      *int64      `json:"user_id"`
	Comment     string      `json:"comment"`
	Items       []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalWeight float64     `json:"total_weight" validate:"min=0"`
	TotalPrice  Money       `json:"total_price"`
}
