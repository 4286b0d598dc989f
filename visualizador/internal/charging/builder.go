package charging

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/blastdata"
	"MinaVision/shared/geom"
)

// Dimensões padrão (metros) aplicadas quando o produto não é encontrado
// no catálogo. Degradação silenciosa: isto é um auxílio visual, nunca um
// motivo de falha.
const (
	defaultBoosterLength     = 0.110
	defaultBoosterDiameter   = 0.056
	defaultInitiatorLength   = 0.098
	defaultInitiatorDiameter = 0.0076
)

// PackingFunc informa quantos cartuchos cabem lado a lado em uma
// profundidade do furo. Fornecida de fora (regras de empacotamento são do
// domínio de carregamento, não da renderização).
type PackingFunc func(holeID string, depth float32) int

// Options são as dependências injetadas do builder. Nada aqui é lido de
// estado global: câmera, escala e catálogo chegam explicitamente para
// permitir teste isolado sem janela.
type Options struct {
	// HoleScale é o fator de escala de exibição dos furos (padrão 1).
	HoleScale float32

	// WorldToLocal converte (leste, norte) do mundo para a origem local
	// de renderização. Padrão: identidade.
	WorldToLocal func(x, y float64) (float64, float64)

	// Products resolve produtos por ID/nome. Pode ser nil.
	Products blastdata.ProductLookup

	// Packing calcula o empacotamento lado a lado de decks desacoplados.
	// Nil usa o fallback por razão de diâmetros.
	Packing PackingFunc

	// ShowDetails habilita satélites, boosters, iniciadores e conteúdos
	// embutidos. Desligado nos níveis de LOD mais grossos.
	ShowDetails bool
}

// Builder converte furos visíveis + planos de carregamento em lotes de
// instâncias prontos para o desenho instanciado. Os buffers internos são
// reaproveitados entre rebuilds.
type Builder struct {
	opt     Options
	batches Batches
}

// NewBuilder cria um builder com as opções dadas.
func NewBuilder(opt Options) *Builder {
	if opt.HoleScale <= 0 {
		opt.HoleScale = 1
	}
	if opt.WorldToLocal == nil {
		opt.WorldToLocal = func(x, y float64) (float64, float64) { return x, y }
	}
	return &Builder{opt: opt}
}

// SetShowDetails ajusta o gate de detalhe (chamado na troca de nível LOD).
func (b *Builder) SetShowDetails(show bool) {
	b.opt.ShowDetails = show
}

// Build reconstrói todos os lotes a partir do zero. Furos sem plano de
// carregamento ou com comprimento inválido são pulados em silêncio.
func (b *Builder) Build(holes []*blastdata.Hole, plans map[string]*blastdata.ChargingPlan) *Batches {
	b.batches.Reset()

	for _, hole := range holes {
		plan, ok := plans[hole.ID]
		if !ok || plan == nil || plan.HoleLength <= 0 {
			continue
		}
		b.buildHole(hole, plan)
	}

	return &b.batches
}

// localPoint converte uma coordenada de mundo (leste, norte, cota) para o
// espaço local de renderização. Norte vira -Z (convenção da cena).
func (b *Builder) localPoint(world [3]float64) mgl32.Vec3 {
	x, y := b.opt.WorldToLocal(world[0], world[1])
	return mgl32.Vec3{float32(x), float32(world[2]), float32(-y)}
}

func (b *Builder) product(id string) *blastdata.Product {
	if b.opt.Products == nil || id == "" {
		return nil
	}
	p, _ := b.opt.Products.Product(id)
	return p
}

// radiusFromDiameterMm aplica a convenção de raio efetivo de exibição.
func (b *Builder) radiusFromDiameterMm(diameterMm float64) float32 {
	return float32(diameterMm/1000) / 2 * b.opt.HoleScale * 2
}

func (b *Builder) buildHole(hole *blastdata.Hole, plan *blastdata.ChargingPlan) {
	collar := b.localPoint(hole.Collar)
	toe := b.localPoint(hole.Toe)

	axis := toe.Sub(collar)
	if axis.Len() < 1e-6 {
		return
	}
	dir := axis.Normalize()

	boreRadius := b.radiusFromDiameterMm(float64(plan.HoleDiameterMm))

	// pointAt interpola ao longo do eixo boca→fundo. Profundidades além
	// do comprimento do furo sofrem clamp, não rejeição.
	pointAt := func(depth float32) mgl32.Vec3 {
		frac := geom.Clamp(depth/plan.HoleLength, 0, 1)
		return collar.Add(axis.Mul(frac))
	}

	for i := range plan.Decks {
		deck := &plan.Decks[i]
		if deck.Type == blastdata.DeckDecoupled {
			b.buildDecoupledDeck(hole, plan, deck, dir, boreRadius, pointAt)
		} else {
			b.batches.Add(KindDeck, Instance{
				HoleID: hole.ID,
				Top:    pointAt(deck.TopDepth),
				Base:   pointAt(deck.BaseDepth),
				Radius: boreRadius,
				Color:  deckColor(deck, b.product(deck.ProductID)),
			})
		}

		if b.opt.ShowDetails {
			b.buildEmbedded(hole, deck, pointAt)
		}
	}

	if b.opt.ShowDetails {
		for i := range plan.Primers {
			b.buildPrimer(hole, &plan.Primers[i], dir, pointAt)
		}
	}
}

// buildDecoupledDeck trata o caso difícil: cartuchos discretos que
// preenchem da base para cima e podem sentar lado a lado quando o
// diâmetro do produto é menor que o do furo. Cada zona vira um cordão
// central; zonas com mais de um cartucho lado a lado ganham satélites
// deslocados perpendicularmente ao eixo.
func (b *Builder) buildDecoupledDeck(hole *blastdata.Hole, plan *blastdata.ChargingPlan, deck *blastdata.Deck, dir mgl32.Vec3, boreRadius float32, pointAt func(float32) mgl32.Vec3) {
	product := b.product(deck.ProductID)
	color := deckColor(deck, product)

	var pkgLen, prodRadius float32
	if product != nil && product.LengthMm > 0 {
		pkgLen = float32(product.LengthMm / 1000)
	}
	if product != nil && product.DiameterMm > 0 {
		prodRadius = b.radiusFromDiameterMm(product.DiameterMm)
	} else {
		prodRadius = boreRadius * 0.6 // Fallback derivado do raio do deck
	}

	countAt := func(depth float32) int {
		if b.opt.Packing != nil {
			return b.opt.Packing(hole.ID, depth)
		}
		return defaultPacking(plan.HoleDiameterMm, product)
	}

	zones, _ := DecoupledZones(deck.TopDepth, deck.BaseDepth, pkgLen, countAt)

	// Offset dos satélites: cartuchos encostados no cordão central, sem
	// sair do furo.
	offset := prodRadius * 2
	if limit := boreRadius - prodRadius; limit > 0 && offset > limit {
		offset = limit
	}
	if floor := prodRadius * 0.5; offset < floor {
		offset = floor
	}

	u, v := geom.PerpendicularBasis(dir)

	for _, z := range zones {
		top := pointAt(z.Top)
		base := pointAt(z.Base)

		b.batches.Add(KindDecoupled, Instance{
			HoleID: hole.ID,
			Top:    top,
			Base:   base,
			Radius: prodRadius,
			Color:  color,
		})

		if !b.opt.ShowDetails || z.Count <= 1 {
			continue
		}

		extra := z.Count - 1
		step := 2 * math32.Pi / float32(extra)
		for k := 0; k < extra; k++ {
			ang := step * float32(k)
			off := u.Mul(math32.Cos(ang) * offset).Add(v.Mul(math32.Sin(ang) * offset))
			b.batches.Add(KindDecoupled, Instance{
				HoleID: hole.ID,
				Top:    top.Add(off),
				Base:   base.Add(off),
				Radius: prodRadius,
				Color:  color,
			})
		}
	}
}

// defaultPacking estima o empacotamento pela razão de diâmetros.
func defaultPacking(holeDiameterMm float32, product *blastdata.Product) int {
	if product == nil || product.DiameterMm <= 0 || holeDiameterMm <= 0 {
		return 1
	}
	n := int(float64(holeDiameterMm) / product.DiameterMm)
	if n < 1 {
		n = 1
	}
	return n
}

// buildPrimer emite o booster e o iniciador como cilindros curtos
// centrados na profundidade do primer, meio comprimento para cada lado do
// eixo. Cores fixas por papel; dimensões do produto quando conhecidas.
func (b *Builder) buildPrimer(hole *blastdata.Hole, primer *blastdata.Primer, dir mgl32.Vec3, pointAt func(float32) mgl32.Vec3) {
	center := pointAt(primer.LengthFromCollar)

	length := float32(defaultBoosterLength)
	diameter := float32(defaultBoosterDiameter)
	if p := b.product(primer.BoosterID); p != nil {
		if p.LengthMm > 0 {
			length = float32(p.LengthMm / 1000)
		}
		if p.DiameterMm > 0 {
			diameter = float32(p.DiameterMm / 1000)
		}
	}
	half := dir.Mul(length / 2)
	b.batches.Add(KindBooster, Instance{
		HoleID: hole.ID,
		Top:    center.Sub(half),
		Base:   center.Add(half),
		Radius: b.radiusFromDiameterMm(float64(diameter) * 1000),
		Color:  colorBooster,
	})

	length = float32(defaultInitiatorLength)
	diameter = float32(defaultInitiatorDiameter)
	if p := b.product(primer.DetonatorID); p != nil {
		if p.ShellLengthMm > 0 {
			length = float32(p.ShellLengthMm / 1000)
		}
		if p.ShellDiameterMm > 0 {
			diameter = float32(p.ShellDiameterMm / 1000)
		}
	}
	half = dir.Mul(length / 2)
	b.batches.Add(KindInitiator, Instance{
		HoleID: hole.ID,
		Top:    center.Sub(half),
		Base:   center.Add(half),
		Radius: b.radiusFromDiameterMm(float64(diameter) * 1000),
		Color:  colorInitiator,
	})
}

// buildEmbedded emite os conteúdos físicos embutidos de um deck
// (câmaras, sensores) como cilindros próprios.
func (b *Builder) buildEmbedded(hole *blastdata.Hole, deck *blastdata.Deck, pointAt func(float32) mgl32.Vec3) {
	for i := range deck.Contains {
		c := &deck.Contains[i]
		if c.Category != "Physical" || c.LengthM <= 0 || c.DiameterMm <= 0 {
			continue
		}

		color := colorEmbedded
		if pc, ok := productColor(b.product(c.ProductID)); ok {
			color = pc
		}

		b.batches.Add(KindEmbedded, Instance{
			HoleID: hole.ID,
			Top:    pointAt(c.LengthFromCollar),
			Base:   pointAt(c.LengthFromCollar + c.LengthM),
			Radius: b.radiusFromDiameterMm(float64(c.DiameterMm)),
			Color:  color,
		})
	}
}
