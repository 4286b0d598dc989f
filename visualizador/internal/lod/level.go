package lod

// Level é um nível de detalhe imutável. A seleção é feita por zoom da
// câmera: vale o nível de maior limiar cujo ZoomThreshold <= zoom.
type Level struct {
	Name          string
	ZoomThreshold float32 // Zoom mínimo da câmera para este nível
	MaxTriangles  int     // 0 = sem limite
	LineDetail    float32 // Razão de simplificação de linhas (0..1)
	PointSize     float32 // Multiplicador do tamanho de ponto
	ShowText      bool
	ShowDetails   bool
}

// Os cinco níveis pré-definidos, em ordem decrescente de limiar.
// MINIMAL tem limiar zero e serve de fallback total: LevelForZoom é
// definida para qualquer zoom, inclusive zero ou negativo.
var (
	LevelFull    = &Level{Name: "FULL", ZoomThreshold: 2.0, MaxTriangles: 0, LineDetail: 1.0, PointSize: 1.0, ShowText: true, ShowDetails: true}
	LevelHigh    = &Level{Name: "HIGH", ZoomThreshold: 0.5, MaxTriangles: 50000, LineDetail: 0.75, PointSize: 1.0, ShowText: true, ShowDetails: true}
	LevelMedium  = &Level{Name: "MEDIUM", ZoomThreshold: 0.1, MaxTriangles: 20000, LineDetail: 0.5, PointSize: 1.25, ShowText: true, ShowDetails: false}
	LevelLow     = &Level{Name: "LOW", ZoomThreshold: 0.02, MaxTriangles: 5000, LineDetail: 0.25, PointSize: 1.5, ShowText: false, ShowDetails: false}
	LevelMinimal = &Level{Name: "MINIMAL", ZoomThreshold: 0.0, MaxTriangles: 1000, LineDetail: 0.1, PointSize: 2.0, ShowText: false, ShowDetails: false}
)

// Levels lista os níveis do mais fino (FULL) ao mais grosso (MINIMAL).
var Levels = []*Level{LevelFull, LevelHigh, LevelMedium, LevelLow, LevelMinimal}

// LevelForZoom retorna o nível mais fino cujo limiar é <= zoom.
// Função pura e total: zooms abaixo de todos os limiares caem em MINIMAL.
func LevelForZoom(zoom float32) *Level {
	for _, lvl := range Levels {
		if lvl.ZoomThreshold <= zoom {
			return lvl
		}
	}
	return LevelMinimal
}

// LevelByName busca um nível pelo nome.
func LevelByName(name string) *Level {
	for _, lvl := range Levels {
		if lvl.Name == name {
			return lvl
		}
	}
	return nil
}

func levelIndex(lvl *Level) int {
	for i, l := range Levels {
		if l == lvl {
			return i
		}
	}
	return len(Levels) - 1
}
