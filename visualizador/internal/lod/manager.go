package lod

import (
	"log"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/geom"
)

// Object é um renderizável controlado pelo gerenciador de LOD. O
// gerenciador só alterna visibilidade; alocação e descarte da geometria
// continuam sendo responsabilidade do dono (cena/renderer), inclusive
// após UnregisterObject.
type Object interface {
	SetVisible(visible bool)
}

// Labeled é implementado por objetos com rótulo de texto associado.
type Labeled interface {
	SetTextVisible(visible bool)
}

// PointSized é implementado por nuvens de pontos com tamanho ajustável.
type PointSized interface {
	SetPointScale(scale float32)
}

// ZoomSource fornece o zoom atual da câmera. Fica injetado no gerenciador
// para permitir testes sem janela/renderer.
type ZoomSource interface {
	Zoom() float32
}

// updateInterval limita o custo do polling por frame.
const updateInterval = 100 * time.Millisecond

// entry guarda as variantes de resolução de um objeto registrado, uma por
// nível (posições seguem Levels; nil = variante não fornecida).
type entry struct {
	variants [5]Object
}

// RegisterOptions fornece as variantes alternativas de um objeto. O objeto
// de detalhe total é passado à parte em RegisterObject.
type RegisterOptions struct {
	HighDetail    Object
	MediumDetail  Object
	LowDetail     Object
	MinimalDetail Object
}

// Stats é o resumo administrativo do gerenciador.
type Stats struct {
	Level        string
	Enabled      bool
	Registered   int
	CacheEntries int
	LevelChanges int
}

type cacheKey struct {
	geometryID uint64
	ratioKey   int32
}

// Manager decide um único nível de detalhe ativo a partir do zoom da
// câmera e propaga a decisão aos objetos registrados, rótulos de texto e
// tamanhos de ponto. Opera somente na thread de render; não há locking.
type Manager struct {
	source  ZoomSource
	current *Level
	enabled bool
	forced  bool

	entries map[string]*entry
	cache   map[cacheKey]*geom.GeometryData

	lastEval time.Time
	now      func() time.Time

	levelChanges int

	// OnLevelChange é chamado com (novo, anterior) a cada transição real.
	// Auto-transições não são reportadas.
	OnLevelChange func(newLevel, oldLevel *Level)
}

// NewManager cria o gerenciador com nível inicial FULL. A fonte de zoom
// pode ser nil: Update então não avalia nada (modo headless).
func NewManager(source ZoomSource) *Manager {
	return &Manager{
		source:  source,
		current: LevelFull,
		enabled: true,
		entries: make(map[string]*entry),
		cache:   make(map[cacheKey]*geom.GeometryData),
		now:     time.Now,
	}
}

// Level retorna o nível ativo.
func (m *Manager) Level() *Level {
	return m.current
}

// Update reavalia o nível a partir do zoom atual. Limitado por throttle;
// sem câmera ou sem mudança de nível é um no-op. Nunca propaga pânico:
// um erro aqui não pode derrubar o frame.
func (m *Manager) Update() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[LOD] Pânico recuperado em Update: %v", r)
		}
	}()

	if !m.enabled || m.forced {
		return
	}
	if !m.lastEval.IsZero() && m.now().Sub(m.lastEval) < updateInterval {
		return
	}
	m.lastEval = m.now()

	if m.source == nil {
		return
	}

	target := LevelForZoom(m.source.Zoom())
	if target == m.current {
		return
	}

	prev := m.current
	m.current = target
	m.levelChanges++
	m.applyAll()

	if m.OnLevelChange != nil {
		m.OnLevelChange(target, prev)
	}
}

// RegisterObject registra um objeto com suas variantes de resolução e
// aplica imediatamente a escolha do nível atual. Re-registrar o mesmo id
// substitui a entrada anterior por completo.
func (m *Manager) RegisterObject(id string, fullDetail Object, opts RegisterOptions) {
	e := &entry{}
	e.variants[0] = fullDetail
	e.variants[1] = opts.HighDetail
	e.variants[2] = opts.MediumDetail
	e.variants[3] = opts.LowDetail
	e.variants[4] = opts.MinimalDetail
	m.entries[id] = e
	m.applyEntry(e)
}

// UnregisterObject remove a entrada. As variantes NÃO são descartadas
// aqui; o dono da cena é quem libera geometria e materiais.
func (m *Manager) UnregisterObject(id string) {
	delete(m.entries, id)
}

// applyAll reaplica o nível atual a todos os objetos registrados.
func (m *Manager) applyAll() {
	for _, e := range m.entries {
		m.applyEntry(e)
	}
}

// applyEntry deixa exatamente uma variante visível. Se o nível exato não
// foi fornecido, cai primeiro para o tier mais próximo de maior detalhe e
// depois para o de menor detalhe: havendo qualquer variante, algo sempre
// aparece.
func (m *Manager) applyEntry(e *entry) {
	target := levelIndex(m.current)

	chosen := -1
	if e.variants[target] != nil {
		chosen = target
	}
	if chosen < 0 {
		for i := target - 1; i >= 0; i-- {
			if e.variants[i] != nil {
				chosen = i
				break
			}
		}
	}
	if chosen < 0 {
		for i := target + 1; i < len(e.variants); i++ {
			if e.variants[i] != nil {
				chosen = i
				break
			}
		}
	}

	for i, v := range e.variants {
		if v == nil {
			continue
		}
		v.SetVisible(i == chosen)

		if lbl, ok := v.(Labeled); ok {
			lbl.SetTextVisible(m.current.ShowText)
		}
		if ps, ok := v.(PointSized); ok {
			ps.SetPointScale(m.current.PointSize)
		}
	}
}

// SimplifyLine expõe a simplificação Douglas-Peucker para os donos de
// polilinhas (traços de desvio de furo, contornos de bancada).
func (m *Manager) SimplifyLine(points []mgl32.Vec3, tolerance float32) []mgl32.Vec3 {
	return geom.SimplifyLine(points, tolerance)
}

// SimplifyGeometry decima uma geometria densa por stride fixo: mantém um
// vértice a cada ceil(n / max(3, floor(n*ratio))), com o canal de cor
// correspondente. Mais grosseiro que Douglas-Peucker de propósito — é o
// caminho barato para malhas/nuvens densas. O resultado fica em cache por
// (identidade da geometria, ratio); a geometria fonte é tratada como
// imutável e o cache nunca é invalidado.
func (m *Manager) SimplifyGeometry(g *geom.GeometryData, targetRatio float32) *geom.GeometryData {
	if g == nil {
		return nil
	}
	if targetRatio <= 0 {
		targetRatio = 0.01
	}
	if targetRatio >= 1 {
		return g
	}

	key := cacheKey{geometryID: g.ID, ratioKey: int32(math32.Round(targetRatio * 10000))}
	if cached, ok := m.cache[key]; ok {
		return cached
	}

	n := g.VertexCount()
	if n == 0 {
		return g
	}

	kept := int(math32.Floor(float32(n) * targetRatio))
	if kept < 3 {
		kept = 3
	}
	stride := int(math32.Ceil(float32(n) / float32(kept)))
	if stride < 1 {
		stride = 1
	}

	vertices := make([]float32, 0, (n/stride+1)*3)
	var colors []uint8
	hasColors := len(g.Colors) >= n*4
	if hasColors {
		colors = make([]uint8, 0, (n/stride+1)*4)
	}

	for i := 0; i < n; i += stride {
		vertices = append(vertices, g.Vertices[i*3], g.Vertices[i*3+1], g.Vertices[i*3+2])
		if hasColors {
			colors = append(colors, g.Colors[i*4], g.Colors[i*4+1], g.Colors[i*4+2], g.Colors[i*4+3])
		}
	}

	out := geom.NewGeometryData(vertices, colors)
	m.cache[key] = out
	return out
}

// ForceLevel fixa um nível manualmente (controle administrativo/debug).
// Update deixa de reavaliar até ClearForce.
func (m *Manager) ForceLevel(name string) bool {
	lvl := LevelByName(name)
	if lvl == nil {
		log.Printf("[LOD] Nível desconhecido: %q", name)
		return false
	}
	m.forced = true
	if lvl != m.current {
		m.current = lvl
		m.levelChanges++
		m.applyAll()
	}
	return true
}

// ClearForce volta ao controle automático por zoom.
func (m *Manager) ClearForce() {
	m.forced = false
}

// SetEnabled liga/desliga o gerenciador. Desligar volta para FULL e
// reaplica, deixando tudo em detalhe máximo.
func (m *Manager) SetEnabled(enabled bool) {
	m.enabled = enabled
	if !enabled {
		if m.current != LevelFull {
			m.current = LevelFull
			m.levelChanges++
		}
		m.applyAll()
	}
}

// GetStats retorna o resumo administrativo atual.
func (m *Manager) GetStats() Stats {
	return Stats{
		Level:        m.current.Name,
		Enabled:      m.enabled,
		Registered:   len(m.entries),
		CacheEntries: len(m.cache),
		LevelChanges: m.levelChanges,
	}
}

// Dispose libera registros e cache. Os renderizáveis registrados não são
// descartados (mesma convenção de UnregisterObject).
func (m *Manager) Dispose() {
	m.entries = make(map[string]*entry)
	m.cache = make(map[cacheKey]*geom.GeometryData)
}
