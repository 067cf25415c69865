package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// The frontend is loose about numeric types: the same field may arrive as a
// JSON number, a plain string, or a Spanish "7,5" decimal. These wrappers
// absorb all three so handlers never see the difference.

func cleanNumeric(b []byte) string {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	return strings.ReplaceAll(s, ",", ".")
}

// FlexFloat is a float64 that also accepts quoted and comma-decimal input.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := cleanNumeric(b)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numero invalido: %s", s)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is an int that also accepts quoted input and float renderings
// ("2000.0").
type FlexInt int

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	s := cleanNumeric(b)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("numero invalido: %s", s)
	}
	*i = FlexInt(int(v))
	return nil
}

// FlexDecimal is a decimal that also accepts quoted and comma-decimal input.
type FlexDecimal struct {
	decimal.Decimal
}

func (d *FlexDecimal) UnmarshalJSON(b []byte) error {
	s := cleanNumeric(b)
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("numero invalido: %s", s)
	}
	d.Decimal = v
	return nil
}
