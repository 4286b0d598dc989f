package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa teclas globais (fora do controle de câmera).
func (a *App) updateInput() {
	// Pausa
	if rl.IsKeyPressed(rl.KeyEscape) {
		if a.State == StatePaused {
			a.State = StateViewing
		} else {
			a.State = StatePaused
		}
	}

	if a.State == StatePaused {
		return
	}

	// HUD e grid
	if rl.IsKeyPressed(rl.KeyF3) {
		a.Config.ShowDebugInfo = !a.Config.ShowDebugInfo
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.Config.ShowGrid = !a.Config.ShowGrid
	}

	// Liga/desliga o gerenciador de LOD
	if rl.IsKeyPressed(rl.KeyF2) {
		a.Config.LODEnabled = !a.Config.LODEnabled
		a.lodMgr.SetEnabled(a.Config.LODEnabled)
	}

	// Forçar nível manualmente (debug)
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		a.forceLevel("FULL")
	case rl.IsKeyPressed(rl.KeyTwo):
		a.forceLevel("HIGH")
	case rl.IsKeyPressed(rl.KeyThree):
		a.forceLevel("MEDIUM")
	case rl.IsKeyPressed(rl.KeyFour):
		a.forceLevel("LOW")
	case rl.IsKeyPressed(rl.KeyFive):
		a.forceLevel("MINIMAL")
	case rl.IsKeyPressed(rl.KeyZero):
		a.lodMgr.ClearForce()
	}
}

// forceLevel fixa um nível e reaplica o gate de detalhe das cargas.
func (a *App) forceLevel(name string) {
	if a.lodMgr.ForceLevel(name) {
		a.builder.SetShowDetails(a.lodMgr.Level().ShowDetails)
		a.rebuildCharges()
	}
}
