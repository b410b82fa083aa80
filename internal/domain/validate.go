package domain

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator возвращает валидатор с правилами заказа:
// тег grind_level и обязательный помол у молотого кофе.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("grind_level", func(fl validator.FieldLevel) bool {
		return GrindLevel(fl.Field().String()).Valid()
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		item := sl.Current().Interface().(OrderItem)
		if item.Type.Kind() == KindGround && item.GrindLevel == GrindNone {
			sl.ReportError(item.GrindLevel, "GrindLevel", "grind_level", "required_for_ground", "")
		}
	}, OrderItem{})
	return v
}
