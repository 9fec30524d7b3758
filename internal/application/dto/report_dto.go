package dto

import "github.com/shopspring/decimal"

// SummaryReportResponse respuesta de GET /api/reports/summary.
// Solo datos estructurados; el formato de presentación es del cliente.
type SummaryReportResponse struct {
	TotalOrders        int64           `json:"total_orders"`
	ProcessedOrders    int64           `json:"processed_orders"`
	LowStockItems      int64           `json:"low_stock_items"`
	TotalLogisticsCost decimal.Decimal `json:"total_logistics_cost"`
}
