package logistics

import (
	"container/heap"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/entity"
)

// Path es el resultado de una búsqueda de ruta más barata: costo total y la
// secuencia completa de ubicaciones desde el origen hasta el destino.
type Path struct {
	Cost decimal.Decimal
	Hops []string
}

// CheapestPath calcula la ruta de costo mínimo entre origin y destination
// sobre el conjunto de aristas dirigidas (Dijkstra, costos no negativos).
// Empates se resuelven de forma determinista: menor número de saltos y luego
// la secuencia de ubicaciones lexicográficamente menor.
// Devuelve false cuando el destino no es alcanzable.
func CheapestPath(edges []entity.RouteEdge, origin, destination string) (*Path, bool) {
	adjacency := make(map[string][]entity.RouteEdge)
	for _, e := range edges {
		adjacency[e.Origin] = append(adjacency[e.Origin], e)
	}

	start := &pathLabel{cost: decimal.Zero, hops: []string{origin}}
	pq := &labelQueue{start}
	heap.Init(pq)

	settled := make(map[string]bool)
	for pq.Len() > 0 {
		label := heap.Pop(pq).(*pathLabel)
		node := label.node()
		if settled[node] {
			continue
		}
		settled[node] = true
		if node == destination {
			return &Path{Cost: label.cost, Hops: label.hops}, true
		}
		for _, e := range adjacency[node] {
			if settled[e.Destination] {
				continue
			}
			next := &pathLabel{
				cost: label.cost.Add(e.Cost),
				hops: append(append([]string(nil), label.hops...), e.Destination),
			}
			heap.Push(pq, next)
		}
	}
	return nil, false
}

// pathLabel es un candidato de ruta parcial dentro de la cola de prioridad.
type pathLabel struct {
	cost decimal.Decimal
	hops []string
}

func (l *pathLabel) node() string { return l.hops[len(l.hops)-1] }

// less ordena por costo, luego por cantidad de saltos y finalmente por la
// secuencia de ubicaciones, para que el resultado sea reproducible.
func (l *pathLabel) less(other *pathLabel) bool {
	if cmp := l.cost.Cmp(other.cost); cmp != 0 {
		return cmp < 0
	}
	if len(l.hops) != len(other.hops) {
		return len(l.hops) < len(other.hops)
	}
	for i := range l.hops {
		if l.hops[i] != other.hops[i] {
			return l.hops[i] < other.hops[i]
		}
	}
	return false
}

// labelQueue implementa heap.Interface sobre pathLabel.
type labelQueue []*pathLabel

func (q labelQueue) Len() int            { return len(q) }
func (q labelQueue) Less(i, j int) bool  { return q[i].less(q[j]) }
func (q labelQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *labelQueue) Push(x interface{}) { *q = append(*q, x.(*pathLabel)) }
func (q *labelQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
