package order

import (
	"math"
	"net/url"
	"sort"
	"strings"
)

// Bills in circulation worth suggesting for cash payments (COP).
var cashBills = []float64{2000, 5000, 10000, 20000, 50000, 100000}

// WhatsApp builds deep links for the messaging handoff. The link is
// opened in a new context by the presentation layer; nothing here
// performs I/O.
type WhatsApp struct {
	baseURL   string
	recipient string
}

// NewWhatsApp returns a link builder for the given service base (e.g.
// "https://wa.me") and recipient number. Formatting punctuation in the
// number is stripped before use.
func NewWhatsApp(baseURL, recipient string) *WhatsApp {
	return &WhatsApp{
		baseURL:   strings.TrimRight(baseURL, "/"),
		recipient: sanitizeRecipient(recipient),
	}
}

// Link returns <base>/<recipient>?text=<url-encoded message>.
func (w *WhatsApp) Link(message string) string {
	return w.baseURL + "/" + w.recipient + "?text=" + url.QueryEscape(message)
}

// sanitizeRecipient keeps only digits: "+57 319-599-7515" becomes
// "573195997515".
func sanitizeRecipient(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

// SuggestBills proposes up to four bill amounts a customer might pay
// with: standard bills covering the total plus the total rounded up to
// the next 10k, 50k and 100k.
func SuggestBills(amount float64) []float64 {
	seen := make(map[float64]bool)
	var options []float64
	add := func(v float64) {
		if v > amount && !seen[v] {
			seen[v] = true
			options = append(options, v)
		}
	}

	for _, bill := range cashBills {
		add(bill)
	}
	for _, step := range []float64{10000, 50000, 100000} {
		add(math.Ceil(amount/step) * step)
	}

	sort.Float64s(options)
	if len(options) > 4 {
		options = options[:4]
	}
	return options
}
