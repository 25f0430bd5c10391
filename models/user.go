package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User rows are created and mutated by the auth service. This API only reads
// them to resolve order ownership and to populate order responses.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Role      Role      `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
