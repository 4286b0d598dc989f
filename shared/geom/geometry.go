package geom

import "sync/atomic"

// geometryIDCounter gera identidades únicas para GeometryData.
var geometryIDCounter uint64

// GeometryData contém os buffers de vértices de uma malha ou nuvem de pontos.
// O ID é a identidade usada como chave de cache de simplificação: uma vez
// criada, a geometria é tratada como imutável (o cache nunca é invalidado).
type GeometryData struct {
	ID       uint64
	Vertices []float32 // XYZ intercalado (stride 3)
	Colors   []uint8   // RGBA intercalado (stride 4), opcional
}

// NewGeometryData cria uma geometria com identidade própria.
func NewGeometryData(vertices []float32, colors []uint8) *GeometryData {
	return &GeometryData{
		ID:       atomic.AddUint64(&geometryIDCounter, 1),
		Vertices: vertices,
		Colors:   colors,
	}
}

// VertexCount retorna o número de vértices (XYZ) do buffer.
func (g *GeometryData) VertexCount() int {
	return len(g.Vertices) / 3
}
