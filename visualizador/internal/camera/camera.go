package camera

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"MinaVision/shared/geom"
)

// referenceDistance calibra o zoom normalizado usado pelo LOD: a esta
// distância do alvo o zoom vale 1.0.
const referenceDistance = 50.0

// Controller gerencia a órbita da câmera sobre a bancada: movimento
// suave, zoom que afeta a velocidade e conversão distância→zoom para o
// gerenciador de LOD.
type Controller struct {
	RLCamera rl.Camera3D

	// Configurações
	MinDistance  float32
	MaxDistance  float32
	MoveSpeed    float32
	RotateSpeed  float32
	ZoomSpeed    float32
	SmoothFactor float32 // 0.0 a 1.0 (quanto menor, mais suave/lento)

	// Estado alvo (para interpolação suave)
	TargetLookAt   rl.Vector3
	TargetDistance float32
	TargetAngleY   float32 // Azimute (radianos)
	TargetAngleX   float32 // Elevação (radianos)

	// Estado atual (interpolado)
	CurrentLookAt   rl.Vector3
	CurrentDistance float32
}

// New cria um controlador de câmera em vista isométrica padrão.
func New() *Controller {
	c := &Controller{
		MinDistance:  2.0,
		MaxDistance:  2500.0,
		MoveSpeed:    50.0,
		RotateSpeed:  2.0,
		ZoomSpeed:    0.12,
		SmoothFactor: 0.12,

		TargetLookAt:   rl.Vector3{X: 0, Y: 0, Z: 0},
		TargetDistance: 80.0,
		TargetAngleY:   45.0 * rl.Deg2rad,
		TargetAngleX:   -35.0 * rl.Deg2rad,
	}

	// Inicializa os valores atuais com os alvos para não "saltar" no início
	c.CurrentLookAt = c.TargetLookAt
	c.CurrentDistance = c.TargetDistance

	c.RLCamera = rl.Camera3D{
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	c.recompute()
	return c
}

// Zoom retorna o zoom normalizado para o gerenciador de LOD: maior quando
// a câmera está perto. Implementa lod.ZoomSource.
func (c *Controller) Zoom() float32 {
	if c.CurrentDistance <= 0 {
		return 1.0
	}
	return referenceDistance / c.CurrentDistance
}

// SetTarget posiciona o alvo da câmera imediatamente (sem suavização).
func (c *Controller) SetTarget(pos rl.Vector3) {
	c.TargetLookAt = pos
	c.CurrentLookAt = pos
	c.recompute()
}

// Frame enquadra uma caixa: centraliza o alvo e afasta o suficiente para
// ver tudo.
func (c *Controller) Frame(center rl.Vector3, radius float32) {
	c.SetTarget(center)
	dist := radius * 2.5
	c.TargetDistance = geom.Clamp(dist, c.MinDistance, c.MaxDistance)
	c.CurrentDistance = c.TargetDistance
	c.recompute()
}

// Update interpola posição e distância em direção aos alvos. Deve ser
// chamado a cada frame.
func (c *Controller) Update(dt float32) {
	factor := c.SmoothFactor * 60.0 * dt // Normaliza para 60 FPS
	if factor > 1.0 {
		factor = 1.0
	}

	cur := mgl32.Vec3{c.CurrentLookAt.X, c.CurrentLookAt.Y, c.CurrentLookAt.Z}
	tgt := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}
	lerped := cur.Add(tgt.Sub(cur).Mul(factor))

	c.CurrentLookAt = rl.Vector3{X: lerped.X(), Y: lerped.Y(), Z: lerped.Z()}
	c.CurrentDistance = geom.Lerp(c.CurrentDistance, c.TargetDistance, factor)

	c.recompute()
}

// recompute converte (alvo, ângulos, distância) esféricos em posição
// cartesiana da câmera.
func (c *Controller) recompute() {
	cosX := math32.Cos(c.TargetAngleX)
	sinX := math32.Sin(c.TargetAngleX)
	cosY := math32.Cos(c.TargetAngleY)
	sinY := math32.Sin(c.TargetAngleY)

	dist := c.CurrentDistance
	offsetX := dist * cosX * sinY
	offsetY := dist * -sinX // Y é UP no raylib; elevação negativa = olhando de cima
	offsetZ := dist * cosX * cosY

	c.RLCamera.Position = rl.Vector3{
		X: c.CurrentLookAt.X + offsetX,
		Y: c.CurrentLookAt.Y + offsetY,
		Z: c.CurrentLookAt.Z + offsetZ,
	}
	c.RLCamera.Target = c.CurrentLookAt
}

// HandleInput processa scroll (zoom), órbita (botão direito) e WASD.
// Retorna true se houve interação.
func (c *Controller) HandleInput(dt float32) bool {
	moved := false

	// Zoom multiplicativo com scroll: passo proporcional à distância
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		moved = true
		c.TargetDistance *= 1.0 - wheel*c.ZoomSpeed
		c.TargetDistance = geom.Clamp(c.TargetDistance, c.MinDistance, c.MaxDistance)
	}

	// Órbita com botão direito
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			moved = true
		}
		c.TargetAngleY -= delta.X * c.RotateSpeed * 0.005
		c.TargetAngleX -= delta.Y * c.RotateSpeed * 0.005

		// Clamp na elevação para não virar a câmera de ponta cabeça
		maxElev := float32(-2.0 * rl.Deg2rad)
		minElev := float32(-89.0 * rl.Deg2rad)
		c.TargetAngleX = geom.Clamp(c.TargetAngleX, minElev, maxElev)
	}

	// Movimento WASD relativo à câmera, projetado no plano XZ
	camPos := mgl32.Vec3{c.RLCamera.Position.X, c.RLCamera.Position.Y, c.RLCamera.Position.Z}
	targetPos := mgl32.Vec3{c.TargetLookAt.X, c.TargetLookAt.Y, c.TargetLookAt.Z}

	forward := targetPos.Sub(camPos)
	forward[1] = 0
	if forward.Len() < 1e-6 {
		return moved
	}
	forward = forward.Normalize()
	right := forward.Cross(mgl32.Vec3{0, 1, 0}).Normalize()

	// Velocidade proporcional à distância: quanto mais longe, mais rápido
	speed := c.MoveSpeed * (c.CurrentDistance / referenceDistance) * dt

	move := mgl32.Vec3{}
	if rl.IsKeyDown(rl.KeyW) {
		move = move.Add(forward)
	}
	if rl.IsKeyDown(rl.KeyS) {
		move = move.Sub(forward)
	}
	if rl.IsKeyDown(rl.KeyD) {
		move = move.Add(right)
	}
	if rl.IsKeyDown(rl.KeyA) {
		move = move.Sub(right)
	}

	if move.Len() > 0 {
		move = move.Normalize().Mul(speed)
		targetPos = targetPos.Add(move)
		c.TargetLookAt = rl.Vector3{X: targetPos.X(), Y: targetPos.Y(), Z: targetPos.Z()}
		moved = true
	}

	return moved
}
