package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Money — сумма в копейках. Цены каталога приходят в рублях и
// переводятся в фиксированную точку один раз, при разборе.
type Money int64

// MoneyFromFloat переводит рубли в копейки с округлением до копейки.
func MoneyFromFloat(rub float64) Money {
	return Money(math.Round(rub * 100))
}

// Mul — стоимость n единиц.
func (m Money) Mul(n int) Money {
	return m * Money(n)
}

// String печатает сумму в рублях: целые без дробной части, иначе с копейками.
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	if v%100 == 0 {
		return sign + strconv.FormatInt(v/100, 10)
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Label — подпись цены для витрины.
func (m Money) Label() string {
	return m.String() + " ₽"
}

// MarshalJSON пишет сумму числом в рублях, как в исходном каталоге.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("money: %w", err)
	}
	*m = MoneyFromFloat(v)
	return nil
}
