package blastdata

import "strings"

// Product descreve um produto (explosivo, booster, detonador, acessório)
// do catálogo. Dimensões ausentes ficam em zero e o renderizador aplica
// os padrões do papel do produto.
type Product struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ColorHex        string  `json:"color_hex,omitempty"` // "#RRGGBB"
	LengthMm        float64 `json:"length_mm,omitempty"`
	DiameterMm      float64 `json:"diameter_mm,omitempty"`
	ShellLengthMm   float64 `json:"shell_length_mm,omitempty"`
	ShellDiameterMm float64 `json:"shell_diameter_mm,omitempty"`
}

// ProductLookup resolve produtos por ID ou nome.
type ProductLookup interface {
	Product(id string) (*Product, bool)
}

// Catalog é a implementação em memória de ProductLookup, indexada por ID
// e por nome (minúsculo).
type Catalog struct {
	byID   map[string]*Product
	byName map[string]*Product
}

// NewCatalog monta um catálogo a partir da lista de produtos do plano.
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		byID:   make(map[string]*Product, len(products)),
		byName: make(map[string]*Product, len(products)),
	}
	for i := range products {
		p := &products[i]
		if p.ID != "" {
			c.byID[p.ID] = p
		}
		if p.Name != "" {
			c.byName[strings.ToLower(p.Name)] = p
		}
	}
	return c
}

// Product busca primeiro por ID e depois por nome.
func (c *Catalog) Product(id string) (*Product, bool) {
	if c == nil || id == "" {
		return nil, false
	}
	if p, ok := c.byID[id]; ok {
		return p, true
	}
	if p, ok := c.byName[strings.ToLower(id)]; ok {
		return p, true
	}
	return nil, false
}
