package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config armazena as configurações do MinaVision.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	Fullscreen   bool   `json:"fullscreen"`
	TargetFPS    int32  `json:"target_fps"`

	// Plano de desmonte
	PlanPath string `json:"plan_path"`

	// Renderização
	HoleScale float32 `json:"hole_scale"` // Escala de exibição dos furos
	FOV       float32 `json:"fov"`

	// Câmera
	CameraSpeed float32 `json:"camera_speed"`
	ZoomSpeed   float32 `json:"zoom_speed"`

	// LOD
	LODEnabled bool `json:"lod_enabled"`

	// Debug
	ShowDebugInfo bool `json:"show_debug_info"`
	ShowGrid      bool `json:"show_grid"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		WindowTitle:  "MinaVision",
		Fullscreen:   false,
		TargetFPS:    60,

		PlanPath: "plano.json",

		HoleScale: 1.0,
		FOV:       45.0,

		CameraSpeed: 50.0,
		ZoomSpeed:   0.12,

		LODEnabled: true,

		ShowDebugInfo: true,
		ShowGrid:      false,
	}
}

// configPath retorna o caminho do arquivo de configuração.
func configPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
func Load() *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath())
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return DefaultConfig()
	}

	return cfg
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save() error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(configPath(), data, 0644)
}
