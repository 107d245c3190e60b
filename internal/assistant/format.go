package assistant

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatNumber groups digits the Indonesian way: 185000 -> "185.000"
func FormatNumber(n int) string {
	return idPrinter.Sprintf("%d", n)
}

// FormatRupiah renders a price as "Rp 185.000"
func FormatRupiah(n int) string {
	return "Rp " + FormatNumber(n)
}
