// Package share renders quotes and offers as WhatsApp-ready messages for the client.
package share

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// WhatsAppBaseURL is the click-to-chat endpoint; the message goes in the text query parameter.
const WhatsAppBaseURL = "https://wa.me/"

const notInformed = "N/A"

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Message is a rendered share message and its click-to-chat link.
type Message struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

func newMessage(text string) Message {
	return Message{Text: text, Link: WhatsAppLink("", text)}
}

// WhatsAppLink builds a wa.me link. phone may be empty to let the agent pick the chat.
func WhatsAppLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return WhatsAppBaseURL + digits + "?text=" + url.QueryEscape(text)
}

// FormatAmount formats a money amount with pt-BR grouping, e.g. 1234.5 -> "1.234,50".
// Digits come from the decimal itself so large amounts keep their cents.
func FormatAmount(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	units, cents, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	return sign + groupUnits(units) + "," + cents
}

// groupUnits groups an unsigned integer string with the locale's thousands separator.
func groupUnits(units string) string {
	if n, err := strconv.ParseInt(units, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}

	var b strings.Builder
	lead := len(units) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(units[:lead])
	for i := lead; i < len(units); i += 3 {
		b.WriteByte('.')
		b.WriteString(units[i : i+3])
	}
	return b.String()
}

// PackageProposal renders the package as a proposal: one line per item and the total.
func PackageProposal(items []domain.PackageItem, total decimal.Decimal) Message {
	var b strings.Builder
	b.WriteString("*PROPOSTA DE VIAGEM*\n\n")
	for _, item := range items {
		fmt.Fprintf(&b, "✅ *%s:* %s\n", item.Service.Category, item.DisplayTitle())
	}
	fmt.Fprintf(&b, "\n💰 *TOTAL: R$ %s*", FormatAmount(total))
	return newMessage(b.String())
}

// FlightQuote renders a single priced flight. Missing attributes print as "N/A".
func FlightQuote(offer domain.ServiceOption, finalPrice decimal.Decimal) Message {
	flight := domain.FlightInfo{}
	if offer.Flight != nil {
		flight = *offer.Flight
	}

	stops := "0"
	if flight.Stops != nil {
		stops = fmt.Sprint(*flight.Stops)
	}
	if stops == "0" {
		stops = "Direto"
	}

	duration := flight.Duration
	if duration == "" {
		minutes := 0
		if flight.DurationMinutes != nil {
			minutes = *flight.DurationMinutes
		}
		duration = domain.FormatDuration(minutes)
	}

	var b strings.Builder
	b.WriteString("*Cotação de Voo Profissional*\n\n")
	fmt.Fprintf(&b, "✈️ *Cia:* %s\n", orDefault(flight.Airline, notInformed))
	fmt.Fprintf(&b, "📍 *Rota:* %s ➔ %s\n", orDefault(flight.Origin, notInformed), orDefault(flight.Destination, notInformed))
	fmt.Fprintf(&b, "🕒 *Partida:* %s\n", orDefault(flight.DepartureTime, notInformed))
	fmt.Fprintf(&b, "🛬 *Chegada:* %s\n", orDefault(flight.ArrivalTime, notInformed))
	fmt.Fprintf(&b, "⏳ *Duração:* %s\n", duration)
	fmt.Fprintf(&b, "🛑 *Escalas:* %s\n", stops)
	fmt.Fprintf(&b, "🛄 *Bagagem:* %s\n", orDefault(offer.BaggageOrType, "Não informada"))
	fmt.Fprintf(&b, "🛋️ *Classe:* %s\n\n", orDefault(flight.CabinClass, "Econômica"))
	fmt.Fprintf(&b, "💰 *Preço Final: %s %s*\n\n", orDefault(offer.Currency, domain.DefaultCurrency), FormatAmount(finalPrice))
	b.WriteString("_Interessado? Garanta sua vaga respondendo esta mensagem._")
	return newMessage(b.String())
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
