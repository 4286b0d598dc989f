package blastdata

// DeckType classifica um deck de carregamento dentro do furo.
type DeckType int

const (
	DeckCoupled   DeckType = iota // Explosivo acoplado à parede do furo
	DeckDecoupled                 // Cartuchos com diâmetro menor que o furo
	DeckInert                     // Material inerte (tampão intermediário)
	DeckSpacer                    // Espaçador / câmara de ar
)

// String retorna o nome do tipo de deck.
func (t DeckType) String() string {
	switch t {
	case DeckCoupled:
		return "COUPLED"
	case DeckDecoupled:
		return "DECOUPLED"
	case DeckInert:
		return "INERT"
	case DeckSpacer:
		return "SPACER"
	}
	return "UNKNOWN"
}

// ParseDeckType converte o nome textual vindo do arquivo de plano.
func ParseDeckType(s string) DeckType {
	switch s {
	case "DECOUPLED":
		return DeckDecoupled
	case "INERT":
		return DeckInert
	case "SPACER":
		return DeckSpacer
	}
	return DeckCoupled
}

// Content é um item físico embutido em um deck (ex: câmara, sensor).
// Apenas conteúdos com categoria "Physical" e dimensões definidas são
// renderizados.
type Content struct {
	ProductID        string  `json:"product_id"`
	Category         string  `json:"category"` // "Physical" habilita renderização
	LengthFromCollar float32 `json:"length_from_collar"`
	LengthM          float32 `json:"length_m"`
	DiameterMm       float32 `json:"diameter_mm"`
}

// Deck é um segmento [TopDepth, BaseDepth] ao longo do eixo boca→fundo.
// Profundidades além do comprimento do furo são toleradas (o builder faz
// clamp, não rejeita).
type Deck struct {
	Type      DeckType  `json:"-"`
	TypeName  string    `json:"type"`
	TopDepth  float32   `json:"top_depth"`
	BaseDepth float32   `json:"base_depth"`
	ProductID string    `json:"product_id"`
	Contains  []Content `json:"contains,omitempty"`
}

// Primer é um ponto de iniciação: booster + detonador a uma profundidade.
type Primer struct {
	LengthFromCollar float32 `json:"length_from_collar"`
	BoosterID        string  `json:"booster_id,omitempty"`
	DetonatorID      string  `json:"detonator_id,omitempty"`
}

// ChargingPlan descreve o carregamento completo de um furo.
type ChargingPlan struct {
	HoleLength     float32  `json:"hole_length"`
	HoleDiameterMm float32  `json:"hole_diameter_mm"`
	Decks          []Deck   `json:"decks"`
	Primers        []Primer `json:"primers,omitempty"`
}

// Hole é um furo de desmonte em coordenadas de mundo (leste, norte, cota).
// Trace é o desvio topografado opcional, do colar ao fundo; quando ausente,
// o furo é tratado como o segmento reto colar→fundo.
type Hole struct {
	ID      string       `json:"id"`
	Collar  [3]float64   `json:"collar"` // leste, norte, cota
	Toe     [3]float64   `json:"toe"`
	Trace   [][3]float64 `json:"trace,omitempty"`
	Visible bool         `json:"-"`
}
