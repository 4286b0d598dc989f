package render

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer é o dono da cena: conjunto instanciado de cargas, variantes de
// traço de furo, rótulos e nuvens de pontos. O gerenciador de LOD só
// alterna visibilidade; a posse (e o descarte) da geometria fica aqui.
type Renderer struct {
	Charges *ChargeSet

	tracks []*TrackModel
	labels []*HoleLabel
	clouds []*PointCloud
}

// NewRenderer cria o renderizador e o conjunto de cargas.
func NewRenderer() *Renderer {
	r := &Renderer{
		Charges: NewChargeSet(),
	}
	log.Printf("[Renderer] Inicializado (GPU pronta: %v)", r.Charges.ready)
	return r
}

// AddTrack registra uma variante de traço para desenho.
func (r *Renderer) AddTrack(t *TrackModel) {
	r.tracks = append(r.tracks, t)
}

// AddLabel registra um rótulo de furo.
func (r *Renderer) AddLabel(l *HoleLabel) {
	r.labels = append(r.labels, l)
}

// AddCloud registra uma variante de nuvem de pontos.
func (r *Renderer) AddCloud(c *PointCloud) {
	r.clouds = append(r.clouds, c)
}

// Draw renderiza a cena 3D: cargas instanciadas, traços visíveis e
// nuvens de pontos. Deve ser chamado dentro do modo 3D.
func (r *Renderer) Draw() {
	r.Charges.Draw()

	for _, t := range r.tracks {
		t.Draw()
	}
	for _, c := range r.clouds {
		c.Draw()
	}
}

// DrawLabels projeta os rótulos visíveis para a tela. Deve ser chamado
// fora do modo 3D (passada 2D).
func (r *Renderer) DrawLabels(cam rl.Camera3D) {
	for _, l := range r.labels {
		l.Draw2D(cam)
	}
}

// Unload libera os recursos de GPU do grupo de cargas.
func (r *Renderer) Unload() {
	r.Charges.Unload()
}
