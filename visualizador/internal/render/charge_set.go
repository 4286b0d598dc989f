package render

import (
	"log"
	"unsafe"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/geom"
	"MinaVision/visualizador/internal/charging"
)

const (
	// zeroLengthEpsilon separa segmentos degenerados de segmentos reais.
	zeroLengthEpsilon = 1e-5

	// minDetailLength é o comprimento mínimo de boosters, iniciadores e
	// conteúdos embutidos: eles sempre renderizam, mesmo que o cálculo de
	// profundidade colapse num ponto.
	minDetailLength = 0.02
)

// cylinderUp é o eixo do cilindro canônico do raylib (base na origem,
// crescendo em +Y).
var cylinderUp = mgl32.Vec3{0, 1, 0}

// InstanceMatrix monta a matriz de uma instância: escala (raio,
// comprimento, raio), rotação de arco mínimo +Y→direção do segmento e
// translação para o topo. No raylib, MatrixMultiply(A, B) aplica A
// primeiro, então a ordem de chamada é escala → rotação → translação.
//
// Segmentos de comprimento zero são pulados (false) para decks, mas
// recebem um comprimento mínimo nas classes de detalhe.
func InstanceMatrix(inst charging.Instance, kind charging.BatchKind) (rl.Matrix, bool) {
	seg := inst.Base.Sub(inst.Top)
	length := seg.Len()

	var dir mgl32.Vec3
	if length < zeroLengthEpsilon {
		if kind == charging.KindDeck || kind == charging.KindDecoupled {
			return rl.Matrix{}, false
		}
		length = minDetailLength
		dir = mgl32.Vec3{0, -1, 0}
	} else {
		dir = seg.Mul(1 / length)
	}

	q := geom.RotationBetween(cylinderUp, dir)
	rot := rl.QuaternionToMatrix(rl.NewQuaternion(q.V[0], q.V[1], q.V[2], q.W))

	m := rl.MatrixMultiply(rl.MatrixScale(inst.Radius, length, inst.Radius), rot)
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(inst.Top.X(), inst.Top.Y(), inst.Top.Z()))
	return m, true
}

// PackColor grava a cor RGB da instância na linha de fundo da matriz
// (campos M3/M7/M11, que numa transformação afim valem 0). O shader
// instanciado lê a cor e zera a linha antes de usar a matriz.
func PackColor(m rl.Matrix, color [4]uint8) rl.Matrix {
	m.M3 = float32(color[0]) / 255
	m.M7 = float32(color[1]) / 255
	m.M11 = float32(color[2]) / 255
	return m
}

// ChargeSet é o conjunto de desenho instanciado das cargas: um cilindro
// unitário compartilhado, um material por classe e os buffers de matrizes
// por instância. No máximo uma chamada de desenho por classe não vazia
// (≤ KindCount), independente do número de furos.
//
// Sem janela (modo headless de teste) o caminho GPU vira no-op, mas a
// montagem de matrizes continua funcionando.
type ChargeSet struct {
	shader     rl.Shader
	mesh       rl.Mesh
	materials  [charging.KindCount]rl.Material
	transforms [charging.KindCount][]rl.Matrix
	ready      bool
}

// NewChargeSet cria o conjunto e os recursos de GPU, se houver janela.
// A malha molde é criada uma única vez e reutilizada em todos os rebuilds;
// só os buffers por instância mudam.
func NewChargeSet() *ChargeSet {
	s := &ChargeSet{}

	if !rl.IsWindowReady() {
		log.Printf("[Carga] Sem janela: desenho instanciado desabilitado (modo headless)")
		return s
	}

	s.shader = rl.LoadShaderFromMemory(chargeInstancedVertexShader, chargeFragmentShader)
	locs := unsafe.Slice(s.shader.Locs, 32)
	locs[rl.ShaderLocMatrixMvp] = rl.GetShaderLocation(s.shader, "mvp")
	locs[rl.ShaderLocColorDiffuse] = rl.GetShaderLocation(s.shader, "colDiffuse")
	locs[rl.ShaderLocMatrixModel] = rl.GetShaderLocationAttrib(s.shader, "instanceTransform")

	s.mesh = rl.GenMeshCylinder(1, 1, 16)
	for k := range s.materials {
		s.materials[k] = rl.LoadMaterialDefault()
		mats := unsafe.Slice(s.materials[k].Maps, 1)
		mats[0].Color = rl.White
		s.materials[k].Shader = s.shader
	}

	s.ready = true
	return s
}

// Rebuild substitui por completo os buffers de instância a partir dos
// lotes. Os slices são reaproveitados (reset para len 0, sem realocar).
func (s *ChargeSet) Rebuild(b *charging.Batches) {
	for k := charging.BatchKind(0); k < charging.KindCount; k++ {
		ts := s.transforms[k][:0]
		for _, inst := range b.Classes[k] {
			m, ok := InstanceMatrix(inst, k)
			if !ok {
				continue
			}
			ts = append(ts, PackColor(m, inst.Color))
		}
		s.transforms[k] = ts
	}
}

// Draw emite no máximo uma chamada instanciada por classe não vazia.
func (s *ChargeSet) Draw() {
	if !s.ready {
		return
	}
	for k := range s.transforms {
		if n := len(s.transforms[k]); n > 0 {
			rl.DrawMeshInstanced(s.mesh, s.materials[k], s.transforms[k], n)
		}
	}
}

// DrawCalls retorna quantas chamadas de desenho o próximo Draw emitirá.
func (s *ChargeSet) DrawCalls() int {
	n := 0
	for k := range s.transforms {
		if len(s.transforms[k]) > 0 {
			n++
		}
	}
	return n
}

// InstanceCount retorna o total de instâncias montadas.
func (s *ChargeSet) InstanceCount() int {
	n := 0
	for k := range s.transforms {
		n += len(s.transforms[k])
	}
	return n
}

// Unload libera a malha molde e o shader. Chamado pelo dono no teardown
// do grupo de cargas; os materiais padrão compartilham recursos globais
// do raylib e não são descarregados individualmente.
func (s *ChargeSet) Unload() {
	if !s.ready {
		return
	}
	rl.UnloadMesh(&s.mesh)
	rl.UnloadShader(s.shader)
	s.ready = false
}
