package entity

import "database/sql"

type User struct {
	Base
	Name  string `gorm:"unique"`
	Email sql.NullString
	Role  string `gorm:"default:USER"`
}

const (
	AdminRole = "ADMIN"
	UserRole  = "USER"
)
