package charging

import "github.com/chewxy/math32"

// Zone é uma faixa axial contígua de um deck desacoplado onde o número de
// cartuchos lado a lado é constante. Top/Base são profundidades a partir
// do colar; Packages é o total de cartuchos inteiros consumidos pela faixa.
type Zone struct {
	Top      float32
	Base     float32
	Count    int // Cartuchos lado a lado (1 cordão central + Count-1 satélites)
	Packages int
}

// WholePackages retorna quantos cartuchos inteiros cabem no deck. O
// pequeno recuo antes do arredondamento evita que erro de ponto flutuante
// promova um cartucho parcial a inteiro (1.0/0.4 → 2, não 3).
func WholePackages(deckLen, pkgLen float32) int {
	if deckLen <= 0 || pkgLen <= 0 {
		return 0
	}
	n := int(math32.Round(deckLen/pkgLen - 1e-4))
	if n < 0 {
		n = 0
	}
	return n
}

// DecoupledZones particiona a zona de carga ativa de um deck desacoplado.
// Os cartuchos preenchem da BASE para cima em bandas de um comprimento de
// cartucho; countAt informa quantos cabem lado a lado em cada
// profundidade. Bandas adjacentes com a mesma contagem são fundidas em
// uma única zona — o resultado é um número pequeno de faixas axiais, não
// uma entrada por cartucho.
//
// Retorna as zonas ordenadas do topo para a base, sem sobreposição, e o
// total de cartuchos inteiros. Um deck onde nenhum cartucho inteiro cabe
// ainda é renderizado como uma unidade cobrindo todo o deck.
func DecoupledZones(topDepth, baseDepth, pkgLen float32, countAt func(depth float32) int) ([]Zone, int) {
	deckLen := baseDepth - topDepth
	if deckLen <= 0 {
		return nil, 0
	}

	total := WholePackages(deckLen, pkgLen)
	if total == 0 {
		return []Zone{{Top: topDepth, Base: baseDepth, Count: 1, Packages: 1}}, 0
	}

	// Consome cartuchos banda por banda, da base para o topo.
	zones := make([]Zone, 0, 4)
	remaining := total
	cursor := baseDepth
	for remaining > 0 {
		bandTop := cursor - pkgLen
		count := 1
		if countAt != nil {
			if c := countAt((cursor + bandTop) * 0.5); c > 1 {
				count = c
			}
		}
		take := count
		if take > remaining {
			take = remaining
		}

		if n := len(zones); n > 0 && zones[n-1].Count == count {
			zones[n-1].Top = bandTop
			zones[n-1].Packages += take
		} else {
			zones = append(zones, Zone{Top: bandTop, Base: cursor, Count: count, Packages: take})
		}

		remaining -= take
		cursor = bandTop
	}

	// Ordena do topo para a base.
	for i, j := 0, len(zones)-1; i < j; i, j = i+1, j-1 {
		zones[i], zones[j] = zones[j], zones[i]
	}

	// Clamp no topo nominal do deck (arredondamento de pkgLen pode
	// estourar o comprimento do deck) e extensão da zona superior quando
	// a folga de arredondamento é pequena, para não deixar uma costura
	// visível entre o deck e a coluna de carga.
	for i := range zones {
		if zones[i].Top < topDepth {
			zones[i].Top = topDepth
		}
	}
	if gap := zones[0].Top - topDepth; gap > 0 && gap < pkgLen*0.5 {
		zones[0].Top = topDepth
	}

	return zones, total
}
