package order

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Colombian-peso display: thousands separated with dots, no decimals.
var printer = message.NewPrinter(language.MustParse("es-CO"))

// FormatPrice renders an amount for display ("$ 22.000"). This is the
// only place currency values are rounded; everything upstream keeps
// full precision.
func FormatPrice(amount float64) string {
	return printer.Sprintf("$ %d", int64(math.Round(amount)))
}
