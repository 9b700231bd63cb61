package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhatsApp_Link(t *testing.T) {
	w := NewWhatsApp("https://wa.me/", "+57 319-599-7515")

	link := w.Link("Hola, quiero un pedido")
	assert.Equal(t, "https://wa.me/573195997515?text=Hola%2C+quiero+un+pedido", link)
}

func TestWhatsApp_LinkEncodesMessageMarkup(t *testing.T) {
	w := NewWhatsApp("https://wa.me", "573195997515")

	link := w.Link("*PEDIDO*\n- 1x Pizza")
	assert.Equal(t, "https://wa.me/573195997515?text=%2APEDIDO%2A%0A-+1x+Pizza", link)
}

func TestSuggestBills(t *testing.T) {
	assert.Equal(t, []float64{40000, 50000, 100000}, SuggestBills(35200))
	assert.Equal(t, []float64{10000, 20000, 50000, 100000}, SuggestBills(8000))
	assert.Equal(t, []float64{5000, 10000, 20000, 50000}, SuggestBills(2000),
		"at most four suggestions")
}

func TestSuggestBills_NeverSuggestsTheTotalItself(t *testing.T) {
	for _, bill := range SuggestBills(20000) {
		assert.Greater(t, bill, 20000.0)
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$ 22.000", FormatPrice(22000))
	assert.Equal(t, "$ 900", FormatPrice(900))
	assert.Equal(t, "$ 22.001", FormatPrice(22000.5), "rounding happens only at display time")
	assert.Equal(t, "$ 1.234.500", FormatPrice(1234500))
}
