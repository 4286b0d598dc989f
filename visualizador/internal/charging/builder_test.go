package charging

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/blastdata"
)

// verticalHole cria um furo vertical de 12 m com colar na cota 100.
func verticalHole(id string) *blastdata.Hole {
	return &blastdata.Hole{
		ID:      id,
		Collar:  [3]float64{0, 0, 100},
		Toe:     [3]float64{0, 0, 88},
		Visible: true,
	}
}

func nearVec(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestBuildCoupledDeckPositions(t *testing.T) {
	hole := verticalHole("H1")
	plans := map[string]*blastdata.ChargingPlan{
		"H1": {
			HoleLength:     12,
			HoleDiameterMm: 100,
			Decks: []blastdata.Deck{
				{Type: blastdata.DeckCoupled, TopDepth: 2, BaseDepth: 10},
			},
		},
	}

	b := NewBuilder(Options{})
	batches := b.Build([]*blastdata.Hole{hole}, plans)

	if got := len(batches.Classes[KindDeck]); got != 1 {
		t.Fatalf("instâncias de deck = %d, want 1", got)
	}
	inst := batches.Classes[KindDeck][0]

	// Frações 2/12 e 10/12 ao longo de colar→fundo
	if !nearVec(inst.Top, mgl32.Vec3{0, 98, 0}) {
		t.Errorf("Top = %v, want (0, 98, 0)", inst.Top)
	}
	if !nearVec(inst.Base, mgl32.Vec3{0, 90, 0}) {
		t.Errorf("Base = %v, want (0, 90, 0)", inst.Base)
	}

	// Raio efetivo: (100mm/1000)/2 * escala 1 * 2 = 0.1
	if math32.Abs(inst.Radius-0.1) > 1e-5 {
		t.Errorf("Radius = %v, want 0.1", inst.Radius)
	}

	// Sem produto: cor do tipo COUPLED
	if inst.Color != deckTypeColors[blastdata.DeckCoupled] {
		t.Errorf("Color = %v, want fallback por tipo", inst.Color)
	}
}

func TestBuildSkipsInvalidHoles(t *testing.T) {
	holes := []*blastdata.Hole{
		verticalHole("SEM_PLANO"),
		verticalHole("COMPRIMENTO_ZERO"),
	}
	plans := map[string]*blastdata.ChargingPlan{
		"COMPRIMENTO_ZERO": {HoleLength: 0, Decks: []blastdata.Deck{{TopDepth: 0, BaseDepth: 5}}},
	}

	b := NewBuilder(Options{})
	batches := b.Build(holes, plans)

	if batches.Total() != 0 {
		t.Errorf("Total = %d, want 0 (furos inválidos pulados)", batches.Total())
	}
}

func TestBuildDecoupledSatellites(t *testing.T) {
	hole := verticalHole("H1")
	catalog := blastdata.NewCatalog([]blastdata.Product{
		{ID: "CART", Name: "Emulsão encartuchada", LengthMm: 400, DiameterMm: 50},
	})
	plans := map[string]*blastdata.ChargingPlan{
		"H1": {
			HoleLength:     12,
			HoleDiameterMm: 100,
			Decks: []blastdata.Deck{
				{Type: blastdata.DeckDecoupled, TopDepth: 0, BaseDepth: 1.0, ProductID: "CART"},
			},
		},
	}

	b := NewBuilder(Options{Products: catalog, ShowDetails: true})
	batches := b.Build([]*blastdata.Hole{hole}, plans)

	// Empacotamento padrão 100/50 = 2 lado a lado: cordão central + 1 satélite
	insts := batches.Classes[KindDecoupled]
	if len(insts) != 2 {
		t.Fatalf("instâncias desacopladas = %d, want 2 (central + satélite)", len(insts))
	}

	central, satellite := insts[0], insts[1]

	// Raio do produto, não do furo
	if math32.Abs(central.Radius-0.05) > 1e-5 {
		t.Errorf("Radius = %v, want 0.05", central.Radius)
	}

	// Os 2 cartuchos sentam lado a lado numa única banda: zona [0.6, 1.0]
	if !nearVec(central.Top, mgl32.Vec3{0, 99.4, 0}) {
		t.Errorf("Top central = %v, want (0, 99.4, 0)", central.Top)
	}
	if !nearVec(central.Base, mgl32.Vec3{0, 99, 0}) {
		t.Errorf("Base central = %v, want (0, 99, 0)", central.Base)
	}

	// Satélite deslocado perpendicularmente ao eixo, sem sair do furo
	off := satellite.Top.Sub(central.Top)
	if math32.Abs(off.Y()) > 1e-5 {
		t.Errorf("offset do satélite tem componente axial: %v", off)
	}
	if math32.Abs(off.Len()-0.05) > 1e-4 {
		t.Errorf("offset do satélite = %v, want 0.05 (raio do furo - raio do produto)", off.Len())
	}

	// Sem detalhes: só o cordão central
	b.SetShowDetails(false)
	batches = b.Build([]*blastdata.Hole{hole}, plans)
	if len(batches.Classes[KindDecoupled]) != 1 {
		t.Errorf("sem detalhes: instâncias = %d, want 1", len(batches.Classes[KindDecoupled]))
	}
}

func TestBuildPrimerDefaults(t *testing.T) {
	hole := verticalHole("H1")
	plans := map[string]*blastdata.ChargingPlan{
		"H1": {
			HoleLength:     12,
			HoleDiameterMm: 100,
			Primers:        []blastdata.Primer{{LengthFromCollar: 6}},
		},
	}

	b := NewBuilder(Options{ShowDetails: true})
	batches := b.Build([]*blastdata.Hole{hole}, plans)

	if len(batches.Classes[KindBooster]) != 1 || len(batches.Classes[KindInitiator]) != 1 {
		t.Fatalf("booster=%d initiator=%d, want 1 e 1",
			len(batches.Classes[KindBooster]), len(batches.Classes[KindInitiator]))
	}

	// Booster padrão: 110mm x 56mm, centrado na profundidade do primer
	booster := batches.Classes[KindBooster][0]
	if got := booster.Base.Sub(booster.Top).Len(); math32.Abs(got-0.110) > 1e-4 {
		t.Errorf("comprimento do booster = %v, want 0.110", got)
	}
	center := booster.Top.Add(booster.Base).Mul(0.5)
	if !nearVec(center, mgl32.Vec3{0, 94, 0}) {
		t.Errorf("centro do booster = %v, want (0, 94, 0)", center)
	}
	if booster.Color != colorBooster {
		t.Errorf("cor do booster = %v, want fixa por papel", booster.Color)
	}

	// Iniciador padrão: 98mm x 7.6mm
	initiator := batches.Classes[KindInitiator][0]
	if got := initiator.Base.Sub(initiator.Top).Len(); math32.Abs(got-0.098) > 1e-4 {
		t.Errorf("comprimento do iniciador = %v, want 0.098", got)
	}
	if initiator.Color != colorInitiator {
		t.Errorf("cor do iniciador = %v, want fixa por papel", initiator.Color)
	}

	// Primers são detalhe: somem no gate desligado
	b.SetShowDetails(false)
	batches = b.Build([]*blastdata.Hole{hole}, plans)
	if batches.Total() != 0 {
		t.Errorf("sem detalhes: Total = %d, want 0", batches.Total())
	}
}

func TestBuildEmbeddedFilter(t *testing.T) {
	hole := verticalHole("H1")
	plans := map[string]*blastdata.ChargingPlan{
		"H1": {
			HoleLength:     12,
			HoleDiameterMm: 100,
			Decks: []blastdata.Deck{
				{
					Type: blastdata.DeckInert, TopDepth: 0, BaseDepth: 4,
					Contains: []blastdata.Content{
						{Category: "Physical", LengthFromCollar: 3, LengthM: 0.5, DiameterMm: 80},
						{Category: "Data", LengthFromCollar: 1, LengthM: 0.5, DiameterMm: 80},
						{Category: "Physical", LengthFromCollar: 2, LengthM: 0, DiameterMm: 80},
					},
				},
			},
		},
	}

	b := NewBuilder(Options{ShowDetails: true})
	batches := b.Build([]*blastdata.Hole{hole}, plans)

	insts := batches.Classes[KindEmbedded]
	if len(insts) != 1 {
		t.Fatalf("instâncias embutidas = %d, want 1 (só Physical com dimensões)", len(insts))
	}
	if !nearVec(insts[0].Top, mgl32.Vec3{0, 97, 0}) || !nearVec(insts[0].Base, mgl32.Vec3{0, 96.5, 0}) {
		t.Errorf("embutido em [%v, %v], want [(0,97,0), (0,96.5,0)]", insts[0].Top, insts[0].Base)
	}
	if insts[0].Color != colorEmbedded {
		t.Errorf("cor = %v, want laranja padrão", insts[0].Color)
	}
}

func TestBuildReusesBuffers(t *testing.T) {
	hole := verticalHole("H1")
	plans := map[string]*blastdata.ChargingPlan{
		"H1": {
			HoleLength:     12,
			HoleDiameterMm: 100,
			Decks:          []blastdata.Deck{{Type: blastdata.DeckCoupled, TopDepth: 0, BaseDepth: 10}},
		},
	}

	b := NewBuilder(Options{})
	first := b.Build([]*blastdata.Hole{hole}, plans)
	second := b.Build([]*blastdata.Hole{hole}, plans)

	if first != second {
		t.Error("Build deveria reaproveitar a mesma estrutura de lotes")
	}
	if second.Total() != 1 {
		t.Errorf("Total após rebuild = %d, want 1 (reset antes de preencher)", second.Total())
	}

	// O número de classes de geometria é fixo: teto de draw calls
	if KindCount != 5 {
		t.Errorf("KindCount = %d, want 5", KindCount)
	}
	if len(second.Classes) != int(KindCount) {
		t.Errorf("len(Classes) = %d, want %d", len(second.Classes), KindCount)
	}
}
