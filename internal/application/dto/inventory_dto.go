package dto

// AddInventoryRequest body para POST /api/inventory. Suma quantity a la
// existencia del SKU en la ubicación (crea la fila si no existe).
type AddInventoryRequest struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Quantity int64  `json:"quantity"`
}

// StockEntryResponse una fila del libro de existencias.
type StockEntryResponse struct {
	SKU      string `json:"sku"`
	Location string `json:"location"`
	Quantity int64  `json:"quantity"`
}

// LowStockResponse elemento de GET /api/inventory/low-stock.
type LowStockResponse struct {
	SKU              string `json:"sku"`
	ProductName      string `json:"product_name"`
	Location         string `json:"location"`
	Quantity         int64  `json:"quantity"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// AvailabilityResponse respuesta de GET /api/inventory/:sku/availability.
// Gap = Available - Demand (negativo cuando falta inventario).
type AvailabilityResponse struct {
	SKU       string `json:"sku"`
	Available int64  `json:"available"`
	Demand    int64  `json:"demand"`
	Gap       int64  `json:"gap"`
}
