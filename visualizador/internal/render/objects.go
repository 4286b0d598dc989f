package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/geom"
)

// TrackModel é uma variante de resolução do traço de um furo (polilinha
// do colar ao fundo). O gerenciador de LOD alterna a visibilidade entre
// as variantes registradas; o dono (Renderer) descarta quando o furo sai
// da cena.
type TrackModel struct {
	HoleID  string
	Points  []mgl32.Vec3
	Color   rl.Color
	visible bool
}

// SetVisible implementa lod.Object.
func (t *TrackModel) SetVisible(visible bool) { t.visible = visible }

// Visible informa se esta variante está ativa.
func (t *TrackModel) Visible() bool { return t.visible }

// Draw desenha a polilinha segmento a segmento.
func (t *TrackModel) Draw() {
	if !t.visible {
		return
	}
	for i := 0; i+1 < len(t.Points); i++ {
		a, b := t.Points[i], t.Points[i+1]
		rl.DrawLine3D(
			rl.Vector3{X: a.X(), Y: a.Y(), Z: a.Z()},
			rl.Vector3{X: b.X(), Y: b.Y(), Z: b.Z()},
			t.Color,
		)
	}
}

// HoleLabel é o rótulo do furo ancorado na boca. Visibilidade de texto é
// controlada globalmente pelo nível de LOD (ShowText).
type HoleLabel struct {
	Text        string
	Position    mgl32.Vec3
	visible     bool
	textVisible bool
}

// SetVisible implementa lod.Object.
func (l *HoleLabel) SetVisible(visible bool) { l.visible = visible }

// SetTextVisible implementa lod.Labeled.
func (l *HoleLabel) SetTextVisible(visible bool) { l.textVisible = visible }

// Draw2D projeta o rótulo para a tela. Deve ser chamado fora do modo 3D.
func (l *HoleLabel) Draw2D(cam rl.Camera3D) {
	if !l.visible || !l.textVisible {
		return
	}
	pos := rl.GetWorldToScreen(rl.Vector3{X: l.Position.X(), Y: l.Position.Y(), Z: l.Position.Z()}, cam)
	rl.DrawText(l.Text, int32(pos.X)+6, int32(pos.Y)-6, 14, rl.RayWhite)
}

// PointCloud é uma nuvem de pontos de superfície. As variantes de menor
// resolução vêm da decimação por stride do gerenciador de LOD; o tamanho
// de ponto acompanha o nível ativo.
type PointCloud struct {
	Geometry   *geom.GeometryData
	Color      rl.Color
	visible    bool
	pointScale float32
}

// NewPointCloud cria a nuvem com escala de ponto neutra.
func NewPointCloud(g *geom.GeometryData, color rl.Color) *PointCloud {
	return &PointCloud{Geometry: g, Color: color, pointScale: 1}
}

// SetVisible implementa lod.Object.
func (p *PointCloud) SetVisible(visible bool) { p.visible = visible }

// SetPointScale implementa lod.PointSized.
func (p *PointCloud) SetPointScale(scale float32) { p.pointScale = scale }

// Draw desenha cada ponto como um cubo minúsculo escalado pelo nível.
func (p *PointCloud) Draw() {
	if !p.visible || p.Geometry == nil {
		return
	}
	size := 0.15 * p.pointScale
	for i := 0; i+2 < len(p.Geometry.Vertices); i += 3 {
		pos := rl.Vector3{X: p.Geometry.Vertices[i], Y: p.Geometry.Vertices[i+1], Z: p.Geometry.Vertices[i+2]}
		rl.DrawCubeV(pos, rl.Vector3{X: size, Y: size, Z: size}, p.Color)
	}
}
