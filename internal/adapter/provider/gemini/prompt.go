package gemini

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
)

// MaxOptionsPerCategory is how many options the collaborator is asked for per category.
const MaxOptionsPerCategory = 3

const anyAirport = "Qualquer aeroporto"

// BuildPrompt renders the pt-BR sourcing brief for one search.
func BuildPrompt(params domain.SearchParams) string {
	origin := params.Origin
	if strings.TrimSpace(origin) == "" {
		origin = anyAirport
	}

	var b strings.Builder
	b.WriteString("Aja como um buscador de viagens ultra-rápido.\n")
	fmt.Fprintf(&b, "OBJETIVO: Encontrar as %d melhores opções de %s para %s.\n",
		MaxOptionsPerCategory, strings.Join(params.CategoryNames(), ", "), params.Destination)
	fmt.Fprintf(&b, "SAÍDA: %s.\n", origin)
	fmt.Fprintf(&b, "DATAS: %s a %s.\n", params.StartDate, params.EndDate)
	if params.Passengers > 1 {
		fmt.Fprintf(&b, "PASSAGEIROS: %d.\n", params.Passengers)
	}
	fmt.Fprintf(&b, "PERFIL: %s.\n\n", params.TravelCategory.Label())

	b.WriteString("REGRAS DE OURO (JSON APENAS):\n")
	b.WriteString("- Traduza tudo para PORTUGUÊS.\n")
	b.WriteString("- OBRIGATÓRIO: fontePesquisa (ex: Google Flights), origemInformacao, " +
		"canalContratacao (SITE, WHATSAPP, TELEFONE ou CONSOLIDADORA), contatoReserva, " +
		"diaDaSemana, horarioSimplificado (Manhã/Tarde/Noite).\n")
	b.WriteString("- Para VOOS: inclua partida, destino, horários exatos e escalas.\n")
	return b.String()
}

func str() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

func objectOf(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: props,
			Required:   required,
		},
	}
}

// sourcingProps are the provenance fields shared by flights and hotels.
func sourcingProps(props map[string]*genai.Schema) map[string]*genai.Schema {
	for _, key := range []string{
		"fontePesquisa", "origemInformacao", "telefoneFornecedor", "whatsappFornecedor",
		"canalContratacao", "contatoReserva", "tipoReserva", "linkDireto", "diaDaSemana",
	} {
		props[key] = str()
	}
	return props
}

// ResponseSchema is the structured-output schema: an object keyed by category whose
// values are arrays of offer records.
func ResponseSchema() *genai.Schema {
	flight := sourcingProps(map[string]*genai.Schema{
		"id": str(), "title": str(), "provider": str(),
		"price": {Type: genai.TypeNumber}, "currency": str(),
		"origin": str(), "destination": str(), "departureTime": str(), "arrivalTime": str(),
		"airline": str(), "stops": {Type: genai.TypeInteger}, "duration": str(),
		"durationMinutes": {Type: genai.TypeInteger}, "cabinClass": str(), "baggageOrType": str(),
		"details": str(), "ranking": {Type: genai.TypeInteger},
		"recommendationType": str(), "justification": str(), "horarioSimplificado": str(),
	})
	hotel := sourcingProps(map[string]*genai.Schema{
		"id": str(), "title": str(), "provider": str(),
		"price": {Type: genai.TypeNumber}, "currency": str(), "location": str(),
		"details": str(), "fareRulesOrPolicy": str(), "ranking": {Type: genai.TypeInteger},
		"recommendationType": str(), "justification": str(),
	})
	simple := func() map[string]*genai.Schema {
		return map[string]*genai.Schema{
			"id": str(), "title": str(), "price": {Type: genai.TypeNumber},
			"details": str(), "fontePesquisa": str(), "canalContratacao": str(),
		}
	}

	required := []string{"title", "price", "fontePesquisa", "canalContratacao"}
	detailed := append(append([]string{}, required...), "origemInformacao", "contatoReserva")

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			string(domain.CategoryFlight):     objectOf(flight, detailed...),
			string(domain.CategoryHotel):      objectOf(hotel, detailed...),
			string(domain.CategoryTransfer):   objectOf(simple(), required...),
			string(domain.CategoryExperience): objectOf(simple(), required...),
		},
	}
}
