package domain

import (
	"fmt"
	"strings"
)

// GrindLevel — степень помола. Пустое значение означает «не выбран».
type GrindLevel string

const (
	GrindNone   GrindLevel = ""
	GrindCoarse GrindLevel = "coarse"
	GrindMedium GrindLevel = "medium"
	GrindFine   GrindLevel = "fine"
)

// GrindOption — пункт селектора помола.
type GrindOption struct {
	Value GrindLevel `json:"value"`
	Text  string     `json:"text"`
}

// GrindPlaceholder — пустой пункт селектора.
const GrindPlaceholder = "Выберите помол..."

// GrindLevels перечисляет допустимые значения в порядке показа.
var GrindLevels = []GrindOption{
	{Value: GrindCoarse, Text: "Грубый (Френч/Дрип/Пуровер)"},
	{Value: GrindMedium, Text: "Средний (Эспрессо)"},
	{Value: GrindFine, Text: "Мелкий (Турка)"},
}

var grindAliases = map[string]GrindLevel{
	"coarse":  GrindCoarse,
	"medium":  GrindMedium,
	"fine":    GrindFine,
	"грубый":  GrindCoarse,
	"средний": GrindMedium,
	"мелкий":  GrindFine,
}

// ParseGrindLevel принимает английские значения и русские названия из старого клиента.
func ParseGrindLevel(s string) (GrindLevel, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GrindNone, nil
	}
	g, ok := grindAliases[s]
	if !ok {
		return GrindNone, Validation(fmt.Sprintf("неизвестный помол: %q", s))
	}
	return g, nil
}

// Valid — true для пустого значения и трёх известных уровней.
func (g GrindLevel) Valid() bool {
	switch g {
	case GrindNone, GrindCoarse, GrindMedium, GrindFine:
		return true
	}
	return false
}

// Short — короткое название для строки корзины.
func (g GrindLevel) Short() string {
	switch g {
	case GrindCoarse:
		return "грубый"
	case GrindMedium:
		return "средний"
	case GrindFine:
		return "мелкий"
	}
	return ""
}
