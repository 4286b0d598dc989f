package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza a cena.
func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(30, 30, 40, 255))

	a.drawScene()
	a.renderer.DrawLabels(a.Cam.RLCamera)
	a.drawHUD()

	if a.State == StatePaused {
		a.drawPauseOverlay()
	}

	rl.EndDrawing()
}

// drawScene renderiza a cena 3D.
func (a *App) drawScene() {
	rl.BeginMode3D(a.Cam.RLCamera)

	if a.Config.ShowGrid {
		rl.DrawGrid(40, 5.0)
	}

	a.renderer.Draw()

	rl.EndMode3D()
}

// drawHUD desenha a interface sobreposta.
func (a *App) drawHUD() {
	if !a.Config.ShowDebugInfo {
		return
	}

	width := int32(320)
	height := int32(190)
	x := int32(rl.GetScreenWidth()) - width - 10
	y := int32(10)

	rl.DrawRectangle(x, y, width, height, rl.NewColor(0, 0, 0, 180))
	rl.DrawRectangleLines(x, y, width, height, rl.NewColor(50, 50, 50, 255))

	// FPS
	fps := rl.GetFPS()
	fpsColor := rl.Green
	if fps < 30 {
		fpsColor = rl.Red
	} else if fps < 50 {
		fpsColor = rl.Yellow
	}
	rl.DrawText(fmt.Sprintf("FPS: %d", fps), x+10, y+10, 20, fpsColor)

	// Nível de LOD ativo
	stats := a.lodMgr.GetStats()
	lodStr := fmt.Sprintf("LOD: %s", stats.Level)
	if !stats.Enabled {
		lodStr += " [OFF]"
	}
	rl.DrawText(lodStr, x+160, y+10, 20, rl.SkyBlue)

	rl.DrawLine(x+10, y+38, x+width-10, y+38, rl.NewColor(100, 100, 100, 100))

	// Cena
	rl.DrawText("CENA", x+10, y+48, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("Furos: %d | Carregamentos: %d", len(a.plan.Holes), len(a.plan.Charging)), x+10, y+64, 14, rl.White)
	rl.DrawText(fmt.Sprintf("Instâncias de carga: %d", a.renderer.Charges.InstanceCount()), x+10, y+82, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Draw calls de carga: %d", a.renderer.Charges.DrawCalls()), x+10, y+100, 14, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Zoom: %.3f | Mudanças LOD: %d", a.Cam.Zoom(), stats.LevelChanges), x+10, y+118, 14, rl.LightGray)

	rl.DrawLine(x+10, y+140, x+width-10, y+140, rl.NewColor(100, 100, 100, 100))

	// Atalhos rápidos
	rl.DrawText("Scroll: Zoom | Dir: Orbitar | WASD: Mover", x+10, y+150, 14, rl.LightGray)
	rl.DrawText("F2: LOD | 1-5: Forçar nível | 0: Auto | F3: HUD", x+10, y+168, 14, rl.SkyBlue)

	// Título no canto inferior direito
	title := "MinaVision v0.1.0"
	titleWidth := rl.MeasureText(title, 18)
	rl.DrawText(title,
		int32(rl.GetScreenWidth())-titleWidth-20, int32(rl.GetScreenHeight())-30,
		18, rl.NewColor(200, 200, 200, 150))
}

// drawPauseOverlay escurece a tela e mostra o aviso de pausa.
func (a *App) drawPauseOverlay() {
	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	rl.DrawRectangle(0, 0, screenWidth, screenHeight, rl.NewColor(0, 0, 0, 150))

	msg := "PAUSADO - ESC para retomar"
	msgWidth := rl.MeasureText(msg, 24)
	rl.DrawText(msg, (screenWidth-msgWidth)/2, screenHeight/2-12, 24, rl.Gold)
}
