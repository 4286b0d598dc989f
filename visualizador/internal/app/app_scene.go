package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/blastdata"
	"MinaVision/shared/geom"
	"MinaVision/visualizador/internal/lod"
	"MinaVision/visualizador/internal/render"
)

// Tolerâncias de simplificação Douglas-Peucker dos traços de furo por
// nível (metros). FULL usa o traço completo; MINIMAL usa o segmento reto
// colar→fundo.
const (
	traceTolHigh   = 0.05
	traceTolMedium = 0.15
	traceTolLow    = 0.40
)

// localPoint converte mundo (leste, norte, cota) para o espaço local da
// cena: mesma convenção do builder de cargas (norte → -Z).
func (a *App) localPoint(world [3]float64) mgl32.Vec3 {
	x, y := a.worldToLocal(world[0], world[1])
	return mgl32.Vec3{float32(x), float32(world[2]), float32(-y)}
}

// buildScene monta os objetos de cena a partir do plano e registra cada
// um no gerenciador de LOD com suas variantes de resolução.
func (a *App) buildScene() {
	var (
		boundsMin = mgl32.Vec3{math32MaxFloat, math32MaxFloat, math32MaxFloat}
		boundsMax = mgl32.Vec3{-math32MaxFloat, -math32MaxFloat, -math32MaxFloat}
		any       bool
	)
	grow := func(p mgl32.Vec3) {
		any = true
		for i := 0; i < 3; i++ {
			if p[i] < boundsMin[i] {
				boundsMin[i] = p[i]
			}
			if p[i] > boundsMax[i] {
				boundsMax[i] = p[i]
			}
		}
	}

	for _, hole := range a.plan.Holes {
		collar := a.localPoint(hole.Collar)
		toe := a.localPoint(hole.Toe)
		grow(collar)
		grow(toe)

		a.buildHoleTrack(hole, collar, toe)

		label := &render.HoleLabel{Text: hole.ID, Position: collar}
		a.lodMgr.RegisterObject("rotulo:"+hole.ID, label, lod.RegisterOptions{})
		a.renderer.AddLabel(label)
	}

	a.buildSurface()

	if any {
		center := boundsMin.Add(boundsMax).Mul(0.5)
		radius := boundsMax.Sub(boundsMin).Len() * 0.5
		if radius < 10 {
			radius = 10
		}
		a.Cam.Frame(rl.Vector3{X: center.X(), Y: center.Y(), Z: center.Z()}, radius)
	}
}

// buildHoleTrack registra as variantes de resolução do traço de um furo.
// Furos sem desvio topografado só têm o segmento reto (variante única —
// o fallback do gerenciador a mantém visível em todos os níveis).
func (a *App) buildHoleTrack(hole *blastdata.Hole, collar, toe mgl32.Vec3) {
	straight := &render.TrackModel{
		HoleID: hole.ID,
		Points: []mgl32.Vec3{collar, toe},
		Color:  rl.NewColor(120, 170, 220, 255),
	}

	if len(hole.Trace) < 3 {
		a.lodMgr.RegisterObject("furo:"+hole.ID, straight, lod.RegisterOptions{})
		a.renderer.AddTrack(straight)
		return
	}

	trace := make([]mgl32.Vec3, len(hole.Trace))
	for i, p := range hole.Trace {
		trace[i] = a.localPoint(p)
	}

	full := &render.TrackModel{HoleID: hole.ID, Points: trace, Color: rl.SkyBlue}
	high := &render.TrackModel{HoleID: hole.ID, Points: a.lodMgr.SimplifyLine(trace, traceTolHigh), Color: rl.SkyBlue}
	medium := &render.TrackModel{HoleID: hole.ID, Points: a.lodMgr.SimplifyLine(trace, traceTolMedium), Color: rl.SkyBlue}
	low := &render.TrackModel{HoleID: hole.ID, Points: a.lodMgr.SimplifyLine(trace, traceTolLow), Color: rl.SkyBlue}

	a.lodMgr.RegisterObject("furo:"+hole.ID, full, lod.RegisterOptions{
		HighDetail:    high,
		MediumDetail:  medium,
		LowDetail:     low,
		MinimalDetail: straight,
	})
	for _, t := range []*render.TrackModel{full, high, medium, low, straight} {
		a.renderer.AddTrack(t)
	}
}

// buildSurface registra a nuvem de pontos de superfície com variantes
// decimadas pelo gerenciador de LOD.
func (a *App) buildSurface() {
	if len(a.plan.Surface) == 0 {
		return
	}

	vertices := make([]float32, 0, len(a.plan.Surface)*3)
	for _, p := range a.plan.Surface {
		v := a.localPoint(p)
		vertices = append(vertices, v.X(), v.Y(), v.Z())
	}
	geo := geom.NewGeometryData(vertices, nil)

	color := rl.NewColor(150, 140, 120, 255)
	full := render.NewPointCloud(geo, color)
	high := render.NewPointCloud(a.lodMgr.SimplifyGeometry(geo, lod.LevelHigh.LineDetail), color)
	medium := render.NewPointCloud(a.lodMgr.SimplifyGeometry(geo, lod.LevelMedium.LineDetail), color)
	low := render.NewPointCloud(a.lodMgr.SimplifyGeometry(geo, lod.LevelLow.LineDetail), color)
	minimal := render.NewPointCloud(a.lodMgr.SimplifyGeometry(geo, lod.LevelMinimal.LineDetail), color)

	a.lodMgr.RegisterObject("superficie", full, lod.RegisterOptions{
		HighDetail:    high,
		MediumDetail:  medium,
		LowDetail:     low,
		MinimalDetail: minimal,
	})
	for _, c := range []*render.PointCloud{full, high, medium, low, minimal} {
		a.renderer.AddCloud(c)
	}

	log.Printf("[App] Superfície: %d pontos (%d após decimação mínima)", geo.VertexCount(), minimal.Geometry.VertexCount())
}

const math32MaxFloat = float32(3.4e38)
