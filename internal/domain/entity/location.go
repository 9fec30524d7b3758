package entity

// Roles de ubicación dentro de la red logística.
const (
	LocationRoleWarehouse = "warehouse"  // bodega de distribución
	LocationRoleRetailHub = "retail_hub" // punto de venta / entrega
)

// Location representa un nodo de la red logística (bodega o hub de retail).
// El nombre es el identificador natural; el core no necesita más atributos.
type Location struct {
	Name string
	Role string
}
