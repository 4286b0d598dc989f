package app

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"MinaVision/shared/blastdata"
	"MinaVision/shared/config"
	"MinaVision/visualizador/internal/camera"
	"MinaVision/visualizador/internal/charging"
	"MinaVision/visualizador/internal/lod"
	"MinaVision/visualizador/internal/render"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateViewing AppState = iota // Visualizando o plano
	StatePaused                  // Pausado
)

// App é a aplicação principal do MinaVision.
type App struct {
	Config *config.Config
	State  AppState

	Cam *camera.Controller

	plan    *blastdata.Plan
	catalog *blastdata.Catalog

	builder  *charging.Builder
	renderer *render.Renderer
	lodMgr   *lod.Manager

	// worldToLocal é a transformação mundo→local injetada no núcleo.
	worldToLocal func(x, y float64) (float64, float64)

	frameCount int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		State:  StateViewing,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning)

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0)

	a.Cam = camera.New()

	// Carrega o plano de desmonte. Falha de carga não derruba a
	// aplicação: abre com a cena vazia.
	plan, err := blastdata.LoadPlan(a.Config.PlanPath)
	if err != nil {
		log.Printf("[App] Falha ao carregar plano: %v", err)
		plan = &blastdata.Plan{Charging: make(map[string]*blastdata.ChargingPlan)}
	}
	a.plan = plan
	a.catalog = blastdata.NewCatalog(plan.Products)

	log.Printf("[App] Plano %q: %d furos, %d carregamentos", plan.Name, len(plan.Holes), len(plan.Charging))

	// Origem local do plano: coordenadas UTM viram offsets pequenos
	// perto da origem da cena (precisão de float32).
	ox, oy := plan.Origin()
	a.worldToLocal = func(x, y float64) (float64, float64) {
		return x - ox, y - oy
	}

	a.builder = charging.NewBuilder(charging.Options{
		HoleScale:    a.Config.HoleScale,
		WorldToLocal: a.worldToLocal,
		Products:     a.catalog,
		ShowDetails:  true,
	})
	a.renderer = render.NewRenderer()

	a.lodMgr = lod.NewManager(a.Cam)
	a.lodMgr.OnLevelChange = func(newLevel, oldLevel *lod.Level) {
		log.Printf("[LOD] Nível %s → %s", oldLevel.Name, newLevel.Name)
		a.builder.SetShowDetails(newLevel.ShowDetails)
		a.rebuildCharges()
	}
	a.lodMgr.SetEnabled(a.Config.LODEnabled)

	a.buildScene()
	a.rebuildCharges()

	for !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}

	a.shutdown()
	rl.CloseWindow()
}

// update atualiza a lógica a cada frame.
func (a *App) update() {
	a.frameCount++

	switch a.State {
	case StateViewing:
		dt := rl.GetFrameTime()
		a.Cam.HandleInput(dt)
		a.Cam.Update(dt)
		a.updateInput()
		a.lodMgr.Update()
	case StatePaused:
		a.updateInput()
	}
}

// rebuildCharges reconstrói do zero os lotes instanciados de carga. Os
// buffers anteriores são totalmente substituídos — não há atualização
// incremental.
func (a *App) rebuildCharges() {
	batches := a.builder.Build(a.plan.VisibleHoles(), a.plan.Charging)
	a.renderer.Charges.Rebuild(batches)
	log.Printf("[Carga] Rebuild: %d instâncias, %d draw calls", a.renderer.Charges.InstanceCount(), a.renderer.Charges.DrawCalls())
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.renderer.Unload()
	a.lodMgr.Dispose()

	if err := a.Config.Save(); err != nil {
		log.Printf("[App] Erro ao salvar configurações: %v", err)
	}
}
