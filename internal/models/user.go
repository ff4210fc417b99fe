package models

import "time"

type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleSuperuser Role = "SUPERUSER"
)

// Roles lists every accepted role value. An empty role is also accepted
// and means the user has no role assigned yet.
var Roles = []Role{RoleUser, RoleAdmin, RoleSuperuser}

type User struct {
	ID        int       `json:"id" db:"id"`
	UUID      string    `json:"uuid" db:"uuid"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Role      Role      `json:"role,omitempty" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Posts     []Post    `json:"posts,omitempty"`
}
