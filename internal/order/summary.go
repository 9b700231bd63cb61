// Package order renders a finalized cart into the message handed off to
// the messaging channel. It consumes read-only snapshots and never
// mutates cart state.
package order

import (
	"errors"
	"fmt"
	"strings"

	"menu-ordering-service/internal/cart"
)

// Validation errors for the pre-send guard. The formatter itself stays
// permissive; callers check Validate before handing off.
var (
	ErrMissingName    = errors.New("order: customer name is required")
	ErrMissingAddress = errors.New("order: delivery address is required")
	ErrEmptyOrder     = errors.New("order: cart is empty")
)

// DeliveryMethod selects home delivery or branch pickup.
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "domicilio"
	DeliveryPickup DeliveryMethod = "recoger"
)

// PaymentMethod selects how the order will be paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentTransfer PaymentMethod = "transferencia"
)

// Delivery describes where the order goes.
type Delivery struct {
	Method  DeliveryMethod
	Address string // home delivery
	Guide   string // optional directions
	Branch  string // pickup
}

// Payment describes how the order will be paid.
type Payment struct {
	Method      PaymentMethod
	Bank        string  // transfer
	NeedsChange bool    // cash
	BillAmount  float64 // cash: bill the customer pays with, when known
}

// Tip is an optional gratuity: a preset percentage of the subtotal, or
// a custom absolute amount that overrides the percentage.
type Tip struct {
	Percent float64
	Custom  *float64
}

// Amount resolves the gratuity for the given subtotal.
func (t Tip) Amount(subtotal float64) float64 {
	if t.Custom != nil {
		return *t.Custom
	}
	return subtotal * t.Percent / 100
}

// Summary is the finalized order: a read-only item snapshot plus the
// customer and checkout details collected by the presentation layer.
type Summary struct {
	Items        []cart.Item
	Subtotal     float64
	Tip          Tip
	CustomerName string
	Delivery     Delivery
	Payment      Payment
	Note         string
}

// GrandTotal is the subtotal plus the resolved gratuity.
func (s Summary) GrandTotal() float64 {
	return s.Subtotal + s.Tip.Amount(s.Subtotal)
}

// Validate is the caller-side guard before handoff: the message may
// only be sent once the customer name and, for home delivery, the
// address are present.
func (s Summary) Validate() error {
	if len(s.Items) == 0 {
		return ErrEmptyOrder
	}
	if strings.TrimSpace(s.CustomerName) == "" {
		return ErrMissingName
	}
	if s.Delivery.Method == DeliveryHome && strings.TrimSpace(s.Delivery.Address) == "" {
		return ErrMissingAddress
	}
	return nil
}

// Builder renders order messages under a fixed restaurant header.
type Builder struct {
	header string
}

// NewBuilder returns a Builder using the given message header line
// (e.g. "NUEVO PEDIDO - EL GALLINERAL").
func NewBuilder(header string) *Builder {
	return &Builder{header: header}
}

// Message renders the order as the human-readable text sent to the
// messaging channel.
func (b *Builder) Message(s Summary) string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "*%s*\n\n", b.header)

	msg.WriteString("*PEDIDO*\n")
	for _, item := range s.Items {
		fmt.Fprintf(&msg, "- %dx %s", item.Quantity, item.DisplayName)
		if item.Note != "" {
			fmt.Fprintf(&msg, "\n  Nota: %s", item.Note)
		}
		fmt.Fprintf(&msg, " | %s\n", FormatPrice(item.UnitPrice*float64(item.Quantity)))
	}

	fmt.Fprintf(&msg, "\nSubtotal: %s", FormatPrice(s.Subtotal))
	if tip := s.Tip.Amount(s.Subtotal); tip > 0 {
		label := "Propina"
		if s.Tip.Custom == nil {
			label = fmt.Sprintf("Propina (%g%%)", s.Tip.Percent)
		}
		fmt.Fprintf(&msg, "\n%s: %s", label, FormatPrice(tip))
	}
	fmt.Fprintf(&msg, "\n*TOTAL: %s*\n\n", FormatPrice(s.GrandTotal()))

	fmt.Fprintf(&msg, "*CLIENTE*\n%s\n\n", s.CustomerName)

	msg.WriteString("*PAGO*\n")
	switch s.Payment.Method {
	case PaymentTransfer:
		bank := s.Payment.Bank
		if bank == "" {
			bank = "Bancolombia"
		}
		fmt.Fprintf(&msg, "Transferencia (%s)", bank)
	default:
		msg.WriteString("Efectivo")
		if s.Payment.NeedsChange {
			if s.Payment.BillAmount > 0 {
				fmt.Fprintf(&msg, " (Paga con: %s)", FormatPrice(s.Payment.BillAmount))
				fmt.Fprintf(&msg, "\nVueltas: %s", FormatPrice(s.Payment.BillAmount-s.GrandTotal()))
			} else {
				msg.WriteString(" (Requiere cambio)")
			}
		} else {
			msg.WriteString(" (Exacto)")
		}
	}

	switch s.Delivery.Method {
	case DeliveryPickup:
		fmt.Fprintf(&msg, "\n\nEntrega: Recoger en %s", s.Delivery.Branch)
	default:
		msg.WriteString("\n\nEntrega: Domicilio")
		if s.Delivery.Address != "" {
			fmt.Fprintf(&msg, " a %s", s.Delivery.Address)
		}
	}
	if guide := strings.TrimSpace(s.Delivery.Guide); guide != "" {
		fmt.Fprintf(&msg, "\nGuía para llegar: %s", guide)
	}

	if note := strings.TrimSpace(s.Note); note != "" {
		fmt.Fprintf(&msg, "\n\n*NOTA*\n%s", note)
	}

	return msg.String()
}
