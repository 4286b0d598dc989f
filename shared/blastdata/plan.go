package blastdata

import (
	"encoding/json"
	"fmt"
	"os"
)

// Plan é o arquivo de plano de desmonte carregado do disco: furos,
// carregamentos por furo, catálogo de produtos e superfície opcional.
type Plan struct {
	Name     string                   `json:"name"`
	Holes    []*Hole                  `json:"holes"`
	Charging map[string]*ChargingPlan `json:"charging"` // chave: ID do furo
	Products []Product                `json:"products,omitempty"`
	Surface  [][3]float64             `json:"surface,omitempty"` // nuvem de pontos (leste, norte, cota)
}

// LoadPlan lê e valida um plano JSON.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plano %s: %w", path, err)
	}

	plan := &Plan{}
	if err := json.Unmarshal(data, plan); err != nil {
		return nil, fmt.Errorf("plano %s: JSON inválido: %w", path, err)
	}

	if plan.Charging == nil {
		plan.Charging = make(map[string]*ChargingPlan)
	}

	// Resolve os tipos de deck textuais e marca todos os furos visíveis.
	// A filtragem de visibilidade é decisão da camada de UI, não do plano.
	for _, cp := range plan.Charging {
		for i := range cp.Decks {
			cp.Decks[i].Type = ParseDeckType(cp.Decks[i].TypeName)
		}
	}
	for _, h := range plan.Holes {
		h.Visible = true
	}

	return plan, nil
}

// Origin retorna a origem local do plano (colar do primeiro furo) usada
// pela transformação mundo→local padrão. Planos vazios usam (0, 0).
func (p *Plan) Origin() (float64, float64) {
	if len(p.Holes) == 0 {
		return 0, 0
	}
	return p.Holes[0].Collar[0], p.Holes[0].Collar[1]
}

// VisibleHoles retorna a lista de furos atualmente visíveis.
func (p *Plan) VisibleHoles() []*Hole {
	out := make([]*Hole, 0, len(p.Holes))
	for _, h := range p.Holes {
		if h.Visible {
			out = append(out, h)
		}
	}
	return out
}
