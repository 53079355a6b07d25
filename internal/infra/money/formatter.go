package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders amounts in one currency for one locale, e.g. "R$ 179,90".
type Formatter struct {
	unit    currency.Unit
	printer *message.Printer
}

func NewFormatter(currencyCode, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", currencyCode, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	return &Formatter{unit: unit, printer: message.NewPrinter(tag)}, nil
}

func (f *Formatter) Currency() string {
	return f.unit.String()
}

func (f *Formatter) Format(amount decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(amount.InexactFloat64())))
}
