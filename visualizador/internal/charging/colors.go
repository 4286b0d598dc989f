package charging

import (
	"strconv"
	"strings"

	"MinaVision/shared/blastdata"
)

// Cores fixas por papel (não derivam de produto).
var (
	colorBooster   = [4]uint8{255, 204, 0, 255}  // Amarelo
	colorInitiator = [4]uint8{230, 60, 50, 255}  // Vermelho
	colorEmbedded  = [4]uint8{255, 140, 0, 255}  // Laranja padrão
	colorNeutral   = [4]uint8{128, 128, 128, 255}
)

// productPalette mapeia substrings do nome do produto para cores de
// exibição. Avaliada em ordem; primeira ocorrência vence.
var productPalette = []struct {
	substr string
	color  [4]uint8
}{
	{"water", [4]uint8{64, 140, 230, 255}},  // Água de furo
	{"stemm", [4]uint8{160, 120, 70, 255}},  // Tampão (brita)
	{"gel", [4]uint8{150, 80, 200, 255}},    // Gel
	{"drill", [4]uint8{130, 130, 130, 255}}, // Detritos de perfuração
	{"anfo", [4]uint8{240, 120, 180, 255}},  // ANFO
	{"emul", [4]uint8{210, 50, 50, 255}},    // Emulsão
}

// deckTypeColors é o fallback por tipo de deck quando não há produto.
var deckTypeColors = map[blastdata.DeckType][4]uint8{
	blastdata.DeckCoupled:   {220, 70, 60, 255},
	blastdata.DeckDecoupled: {240, 150, 60, 255},
	blastdata.DeckInert:     {180, 150, 110, 255},
	blastdata.DeckSpacer:    {190, 190, 200, 255},
}

// ParseHexColor interpreta "#RRGGBB" ou "RRGGBB" (alpha sempre opaco).
func ParseHexColor(s string) ([4]uint8, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return colorNeutral, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return colorNeutral, false
	}
	return [4]uint8{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, true
}

// productColor resolve a cor de um produto: hex explícito primeiro,
// depois a paleta por substring do nome.
func productColor(p *blastdata.Product) ([4]uint8, bool) {
	if p == nil {
		return colorNeutral, false
	}
	if c, ok := ParseHexColor(p.ColorHex); ok {
		return c, true
	}
	name := strings.ToLower(p.Name)
	for _, entry := range productPalette {
		if strings.Contains(name, entry.substr) {
			return entry.color, true
		}
	}
	return colorNeutral, false
}

// deckColor aplica a cadeia de prioridade: cor do produto → paleta por
// nome → fallback por tipo de deck → cinza neutro.
func deckColor(deck *blastdata.Deck, p *blastdata.Product) [4]uint8 {
	if c, ok := productColor(p); ok {
		return c
	}
	if c, ok := deckTypeColors[deck.Type]; ok {
		return c
	}
	return colorNeutral
}
