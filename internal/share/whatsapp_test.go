package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

func intPtr(v int) *int {
	return &v
}

func item(category domain.ServiceCategory, title, customTitle string) domain.PackageItem {
	return domain.PackageItem{
		ID: title,
		PricedOffer: domain.PricedOffer{
			Service: domain.ServiceOption{ID: title, Category: category, Title: title},
		},
		CustomTitle: customTitle,
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"zero", "0", "0,00"},
		{"cents padded", "1234.5", "1.234,50"},
		{"rounded", "1679.999", "1.680,00"},
		{"small negative keeps sign", "-0.5", "-0,50"},
		{"negative grouped", "-1234.56", "-1.234,56"},
		{"beyond float precision", "12345678901234567.89", "12.345.678.901.234.567,89"},
		{"beyond int64", "98765432109876543210.55", "98.765.432.109.876.543.210,55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestPackageProposal(t *testing.T) {
	items := []domain.PackageItem{
		item(domain.CategoryHotel, "Hotel Boa Viagem", ""),
		item(domain.CategoryTransfer, "Transfer aeroporto", "Transfer privativo"),
	}

	msg := PackageProposal(items, decimal.RequireFromString("1680"))

	lines := strings.Split(msg.Text, "\n")
	assert.Equal(t, "*PROPOSTA DE VIAGEM*", lines[0])
	assert.Contains(t, msg.Text, "✅ *HOTEL:* Hotel Boa Viagem")
	assert.Contains(t, msg.Text, "✅ *TRANSFER:* Transfer privativo")
	assert.Contains(t, msg.Text, "💰 *TOTAL: R$ 1.680")
	assert.Less(t, strings.Index(msg.Text, "HOTEL"), strings.Index(msg.Text, "TRANSFER"))
}

func TestPackageProposal_Empty(t *testing.T) {
	msg := PackageProposal(nil, decimal.Zero)

	assert.True(t, strings.HasPrefix(msg.Text, "*PROPOSTA DE VIAGEM*"))
	assert.NotContains(t, msg.Text, "✅")
	assert.Contains(t, msg.Text, "R$ 0")
}

func TestFlightQuote(t *testing.T) {
	offer := domain.ServiceOption{
		ID:            "f1",
		Category:      domain.CategoryFlight,
		Currency:      "BRL",
		BaggageOrType: "1 mala de 23kg",
		Flight: &domain.FlightInfo{
			Airline:       "LATAM",
			Origin:        "GRU",
			Destination:   "REC",
			DepartureTime: "08:15",
			ArrivalTime:   "11:30",
			Stops:         intPtr(0),
			Duration:      "3h 15m",
		},
	}

	msg := FlightQuote(offer, decimal.RequireFromString("2200"))

	assert.True(t, strings.HasPrefix(msg.Text, "*Cotação de Voo Profissional*"))
	assert.Contains(t, msg.Text, "*Cia:* LATAM")
	assert.Contains(t, msg.Text, "GRU ➔ REC")
	assert.Contains(t, msg.Text, "*Escalas:* Direto")
	assert.Contains(t, msg.Text, "*Duração:* 3h 15m")
	assert.Contains(t, msg.Text, "*Bagagem:* 1 mala de 23kg")
	assert.Contains(t, msg.Text, "*Classe:* Econômica")
	assert.Contains(t, msg.Text, "BRL 2.200,00")
}

func TestFlightQuote_Defaults(t *testing.T) {
	tests := []struct {
		name   string
		flight *domain.FlightInfo
		want   []string
	}{
		{
			name:   "no flight attributes",
			flight: nil,
			want:   []string{"*Cia:* N/A", "N/A ➔ N/A", "*Partida:* N/A", "*Escalas:* Direto", "*Duração:* 0h 0m", "*Bagagem:* Não informada"},
		},
		{
			name:   "stops and minutes",
			flight: &domain.FlightInfo{Stops: intPtr(2), DurationMinutes: intPtr(425), CabinClass: "Executiva"},
			want:   []string{"*Escalas:* 2", "*Duração:* 7h 5m", "*Classe:* Executiva"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := domain.ServiceOption{ID: "f1", Category: domain.CategoryFlight, Flight: tt.flight}
			msg := FlightQuote(offer, decimal.Zero)
			for _, w := range tt.want {
				assert.Contains(t, msg.Text, w)
			}
		})
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+55 (81) 99999-0000", "Olá & até já")

	require.True(t, strings.HasPrefix(link, "https://wa.me/5581999990000?text="))
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Olá & até já", u.Query().Get("text"))
}

func TestMessageLinkRoundTrip(t *testing.T) {
	msg := PackageProposal([]domain.PackageItem{item(domain.CategoryHotel, "Pousada", "")}, decimal.NewFromInt(500))

	u, err := url.Parse(msg.Link)
	require.NoError(t, err)
	assert.Equal(t, msg.Text, u.Query().Get("text"))
}
