package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrRouteNotFound       = errors.New("ruta no encontrada para el par origen-destino")
	ErrUnknownLocation     = errors.New("ubicación desconocida")
	ErrUnknownSku          = errors.New("sku desconocido")
	ErrConsistencyConflict = errors.New("conflicto de concurrencia al aplicar la transferencia")
)
