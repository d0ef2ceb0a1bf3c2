package i18n

import "golang.org/x/text/message"

// FormatPrice renders a whole-unit price with the locale's digit grouping.
func FormatPrice(l Locale, amount int64) string {
	return message.NewPrinter(l.Tag()).Sprintf("$%d", amount)
}
