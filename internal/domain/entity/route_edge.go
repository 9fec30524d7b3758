package entity

import "github.com/shopspring/decimal"

// RouteEdge representa una ruta dirigida entre dos ubicaciones con su costo
// de transporte. A lo sumo existe una arista por par ordenado; el costo no
// tiene que ser simétrico.
type RouteEdge struct {
	Origin      string
	Destination string
	Cost        decimal.Decimal // costo de transporte, siempre >= 0
}
