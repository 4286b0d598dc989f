package geom

import "github.com/go-gl/mathgl/mgl32"

// SimplifyLine reduz uma polilinha 3D pelo algoritmo de Douglas-Peucker.
// O resultado é sempre uma subsequência da entrada, na ordem original,
// incluindo o primeiro e o último ponto. Para entradas com menos de 3
// pontos não há o que simplificar e a entrada é devolvida como está.
// Usada para os traços de desvio dos furos nos níveis de detalhe baixos.
func SimplifyLine(points []mgl32.Vec3, tolerance float32) []mgl32.Vec3 {
	if len(points) < 3 {
		return points
	}
	if tolerance < 0 {
		tolerance = 0
	}
	return douglasPeucker(points, tolerance)
}

func douglasPeucker(points []mgl32.Vec3, tolerance float32) []mgl32.Vec3 {
	if len(points) <= 2 {
		return points
	}

	// Ponto de maior distância perpendicular à corda primeiro→último
	end := len(points) - 1
	var dmax float32
	index := 0
	for i := 1; i < end; i++ {
		d := PointLineDistance(points[i], points[0], points[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax > tolerance {
		left := douglasPeucker(points[:index+1], tolerance)
		right := douglasPeucker(points[index:], tolerance)

		// Concatena removendo o ponto duplicado na junção
		result := make([]mgl32.Vec3, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	// Todo o trecho cabe dentro da tolerância: colapsa nos extremos
	return []mgl32.Vec3{points[0], points[end]}
}
