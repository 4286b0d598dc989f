package charging

import "github.com/go-gl/mathgl/mgl32"

// BatchKind é a classe de geometria de uma instância. O número de draw
// calls do desenho de carga é limitado por KindCount, independente da
// quantidade de furos — esse é o ponto central do design.
type BatchKind int

const (
	KindDeck      BatchKind = iota // Decks acoplados, inertes e espaçadores
	KindDecoupled                  // Cordões centrais e satélites de decks desacoplados
	KindBooster                    // Boosters dos primers
	KindInitiator                  // Detonadores/iniciadores dos primers
	KindEmbedded                   // Conteúdos físicos embutidos em decks
	KindCount
)

// String retorna o nome da classe (para HUD e logs).
func (k BatchKind) String() string {
	switch k {
	case KindDeck:
		return "deck"
	case KindDecoupled:
		return "decoupled"
	case KindBooster:
		return "booster"
	case KindInitiator:
		return "initiator"
	case KindEmbedded:
		return "embedded"
	}
	return "?"
}

// Instance é um cilindro orientado: par topo/base no espaço local, raio e
// cor. Dados puramente transitórios — reconstruídos a cada redraw e
// descartados assim que as matrizes de instância são montadas.
type Instance struct {
	HoleID string
	Top    mgl32.Vec3
	Base   mgl32.Vec3
	Radius float32
	Color  [4]uint8
}

// Batches agrupa as instâncias por classe de geometria. Os slices são
// reaproveitados entre rebuilds (reset para len 0, sem realocar).
type Batches struct {
	Classes [KindCount][]Instance
}

// Reset esvazia os lotes preservando a capacidade alocada.
func (b *Batches) Reset() {
	for i := range b.Classes {
		b.Classes[i] = b.Classes[i][:0]
	}
}

// Add anexa uma instância à classe dada.
func (b *Batches) Add(kind BatchKind, inst Instance) {
	b.Classes[kind] = append(b.Classes[kind], inst)
}

// Total retorna o número total de instâncias em todas as classes.
func (b *Batches) Total() int {
	n := 0
	for i := range b.Classes {
		n += len(b.Classes[i])
	}
	return n
}
