package lod

import (
	"testing"
	"time"

	"MinaVision/shared/geom"
)

// fakeObject registra o que o gerenciador aplicou nele.
type fakeObject struct {
	visible     bool
	textVisible bool
	pointScale  float32
}

func (f *fakeObject) SetVisible(v bool)       { f.visible = v }
func (f *fakeObject) SetTextVisible(v bool)   { f.textVisible = v }
func (f *fakeObject) SetPointScale(s float32) { f.pointScale = s }

// fakeZoom é uma fonte de zoom controlável pelo teste.
type fakeZoom struct{ zoom float32 }

func (f *fakeZoom) Zoom() float32 { return f.zoom }

// newTestManager cria um gerenciador com relógio falso controlável.
func newTestManager(src ZoomSource) (*Manager, *time.Time) {
	m := NewManager(src)
	clock := time.Unix(1000, 0)
	m.now = func() time.Time { return clock }
	return m, &clock
}

func TestManagerUpdateSwitchesLevel(t *testing.T) {
	src := &fakeZoom{zoom: 3.0}
	m, clock := newTestManager(src)

	variants := [5]*fakeObject{{}, {}, {}, {}, {}}
	m.RegisterObject("furo:T1", variants[0], RegisterOptions{
		HighDetail:    variants[1],
		MediumDetail:  variants[2],
		LowDetail:     variants[3],
		MinimalDetail: variants[4],
	})

	checkOnlyVisible := func(want int) {
		t.Helper()
		for i, v := range variants {
			if v.visible != (i == want) {
				t.Errorf("variante %d visible = %v com nível %s", i, v.visible, m.Level().Name)
			}
		}
	}

	// Registro aplica o nível inicial (FULL) imediatamente
	checkOnlyVisible(0)

	src.zoom = 0.3
	m.Update()
	if m.Level() != LevelMedium {
		t.Fatalf("nível = %s, want MEDIUM", m.Level().Name)
	}
	checkOnlyVisible(2)

	// MEDIUM ainda mostra texto e aumenta pontos
	if !variants[2].textVisible {
		t.Error("MEDIUM deveria manter texto visível")
	}
	if variants[2].pointScale != 1.25 {
		t.Errorf("pointScale = %v, want 1.25", variants[2].pointScale)
	}

	*clock = clock.Add(200 * time.Millisecond)
	src.zoom = 0.01
	m.Update()
	if m.Level() != LevelMinimal {
		t.Fatalf("nível = %s, want MINIMAL", m.Level().Name)
	}
	checkOnlyVisible(4)
	if variants[4].textVisible {
		t.Error("MINIMAL não deveria mostrar texto")
	}
}

func TestManagerUpdateThrottle(t *testing.T) {
	src := &fakeZoom{zoom: 0.3}
	m, clock := newTestManager(src)

	m.Update()
	if m.Level() != LevelMedium {
		t.Fatalf("nível = %s, want MEDIUM", m.Level().Name)
	}

	// Dentro da janela de throttle a mudança de zoom é ignorada
	src.zoom = 3.0
	*clock = clock.Add(50 * time.Millisecond)
	m.Update()
	if m.Level() != LevelMedium {
		t.Errorf("nível mudou dentro da janela de throttle: %s", m.Level().Name)
	}

	*clock = clock.Add(100 * time.Millisecond)
	m.Update()
	if m.Level() != LevelFull {
		t.Errorf("nível = %s após throttle expirar, want FULL", m.Level().Name)
	}
}

func TestManagerFallbackVariants(t *testing.T) {
	m, _ := newTestManager(nil)

	// Só a variante FULL existe: tem que ficar visível em qualquer nível
	full := &fakeObject{}
	m.RegisterObject("furo:F1", full, RegisterOptions{})
	m.ForceLevel("MINIMAL")
	if !full.visible {
		t.Error("variante única deveria permanecer visível em MINIMAL")
	}

	// Nível exato ausente: cai primeiro para o tier de maior detalhe
	fullB, highB, minB := &fakeObject{}, &fakeObject{}, &fakeObject{}
	m.RegisterObject("furo:F2", fullB, RegisterOptions{HighDetail: highB, MinimalDetail: minB})
	m.ForceLevel("MEDIUM")
	if !highB.visible || fullB.visible || minB.visible {
		t.Errorf("MEDIUM ausente deveria escolher HIGH: full=%v high=%v min=%v",
			fullB.visible, highB.visible, minB.visible)
	}

	// Sem variante de maior detalhe: cai para o de menor detalhe
	minOnly := &fakeObject{}
	m.RegisterObject("furo:F3", nil, RegisterOptions{MinimalDetail: minOnly})
	m.ForceLevel("FULL")
	if !minOnly.visible {
		t.Error("única variante MINIMAL deveria ser escolhida em FULL")
	}
}

func TestManagerRegisterOverwrites(t *testing.T) {
	m, _ := newTestManager(nil)

	old := &fakeObject{}
	m.RegisterObject("superficie", old, RegisterOptions{})

	replacement := &fakeObject{}
	m.RegisterObject("superficie", replacement, RegisterOptions{})

	if got := m.GetStats().Registered; got != 1 {
		t.Errorf("Registered = %d, want 1", got)
	}

	m.UnregisterObject("superficie")
	if got := m.GetStats().Registered; got != 0 {
		t.Errorf("Registered após unregister = %d, want 0", got)
	}
}

func TestManagerForceLevel(t *testing.T) {
	src := &fakeZoom{zoom: 3.0}
	m, clock := newTestManager(src)

	if !m.ForceLevel("LOW") {
		t.Fatal("ForceLevel(LOW) deveria retornar true")
	}
	if m.Level() != LevelLow {
		t.Fatalf("nível = %s, want LOW", m.Level().Name)
	}

	// Forçado: Update não reavalia mesmo com zoom alto
	*clock = clock.Add(time.Second)
	m.Update()
	if m.Level() != LevelLow {
		t.Errorf("nível mudou com força ativa: %s", m.Level().Name)
	}

	m.ClearForce()
	*clock = clock.Add(time.Second)
	m.Update()
	if m.Level() != LevelFull {
		t.Errorf("nível = %s após ClearForce, want FULL", m.Level().Name)
	}

	if m.ForceLevel("ULTRA") {
		t.Error("ForceLevel de nível desconhecido deveria retornar false")
	}
}

func TestManagerSetEnabled(t *testing.T) {
	src := &fakeZoom{zoom: 0.01}
	m, clock := newTestManager(src)

	m.Update()
	if m.Level() != LevelMinimal {
		t.Fatalf("nível = %s, want MINIMAL", m.Level().Name)
	}

	// Desligar volta para FULL e congela
	m.SetEnabled(false)
	if m.Level() != LevelFull {
		t.Fatalf("nível = %s após desligar, want FULL", m.Level().Name)
	}
	*clock = clock.Add(time.Second)
	m.Update()
	if m.Level() != LevelFull {
		t.Errorf("nível mudou com gerenciador desligado: %s", m.Level().Name)
	}

	m.SetEnabled(true)
	*clock = clock.Add(time.Second)
	m.Update()
	if m.Level() != LevelMinimal {
		t.Errorf("nível = %s após religar, want MINIMAL", m.Level().Name)
	}
}

func TestManagerOnLevelChange(t *testing.T) {
	src := &fakeZoom{zoom: 3.0}
	m, _ := newTestManager(src)

	var gotNew, gotOld *Level
	calls := 0
	m.OnLevelChange = func(newLevel, oldLevel *Level) {
		gotNew, gotOld = newLevel, oldLevel
		calls++
	}

	m.Update() // FULL → FULL: sem transição
	if calls != 0 {
		t.Fatalf("callback chamado sem transição: %d", calls)
	}

	src.zoom = 0.3
	m.Update()
	if calls != 1 || gotNew != LevelMedium || gotOld != LevelFull {
		t.Errorf("callback: calls=%d new=%v old=%v", calls, gotNew, gotOld)
	}
}

func TestSimplifyGeometryStride(t *testing.T) {
	m, _ := newTestManager(nil)

	n := 100
	vertices := make([]float32, n*3)
	colors := make([]uint8, n*4)
	for i := 0; i < n; i++ {
		vertices[i*3] = float32(i)
		colors[i*4] = uint8(i)
		colors[i*4+3] = 255
	}
	g := geom.NewGeometryData(vertices, colors)

	got := m.SimplifyGeometry(g, 0.1)
	if got.VertexCount() != 10 {
		t.Fatalf("VertexCount = %d, want 10 (stride 10)", got.VertexCount())
	}
	// Vértices mantidos a cada stride, na ordem original
	for i := 0; i < got.VertexCount(); i++ {
		if got.Vertices[i*3] != float32(i*10) {
			t.Errorf("vértice %d: x = %v, want %v", i, got.Vertices[i*3], float32(i*10))
		}
		if got.Colors[i*4] != uint8(i*10) {
			t.Errorf("vértice %d: cor desalinhada", i)
		}
	}
}

func TestSimplifyGeometryCacheAndPassthrough(t *testing.T) {
	m, _ := newTestManager(nil)

	g := geom.NewGeometryData(make([]float32, 300), nil)

	first := m.SimplifyGeometry(g, 0.25)
	second := m.SimplifyGeometry(g, 0.25)
	if first != second {
		t.Error("mesma geometria e ratio deveriam vir do cache (mesmo ponteiro)")
	}
	if m.GetStats().CacheEntries != 1 {
		t.Errorf("CacheEntries = %d, want 1", m.GetStats().CacheEntries)
	}

	other := m.SimplifyGeometry(g, 0.5)
	if other == first {
		t.Error("ratio diferente não pode compartilhar entrada de cache")
	}

	// Ratio >= 1 devolve a geometria original sem tocar no cache
	if got := m.SimplifyGeometry(g, 1.0); got != g {
		t.Error("ratio 1.0 deveria devolver a geometria original")
	}
	if got := m.SimplifyGeometry(nil, 0.5); got != nil {
		t.Error("geometria nil deveria devolver nil")
	}

	// Mínimo de 3 vértices mesmo com ratio agressivo
	tiny := m.SimplifyGeometry(g, 0.001)
	if tiny.VertexCount() < 3 {
		t.Errorf("VertexCount = %d, want >= 3", tiny.VertexCount())
	}
}
