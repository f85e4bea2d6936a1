package ui

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/adrsh79086/adarsh-contractor-frontend/internal/model"
)

var printer = message.NewPrinter(language.English)

// Rupees renders an amount with the rupee sign and locale thousands
// separators: 50000 becomes "₹50,000". The fractional part only appears when
// the amount actually has one.
func Rupees(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("₹%d", d.IntPart())
	}
	f, _ := d.Float64()
	return printer.Sprintf("₹%.2f", f)
}

// badgeLabels is the terminal rendition of the status badges. Exhaustive
// over the known states; unknown values fall through to the raw string.
var badgeLabels = map[model.Status]string{
	model.StatusPending:  "[pending]",
	model.StatusApproved: "[approved]",
	model.StatusRejected: "[rejected]",
}

// StatusBadge returns the display form of a record status.
func StatusBadge(s model.Status) string {
	if label, ok := badgeLabels[s]; ok {
		return label
	}
	return "[" + string(s) + "]"
}
