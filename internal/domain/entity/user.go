package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	CreatedAt    time.Time
}
