package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Back-office staff - full access
	RoleManager Role = "manager" // Can approve leave and run payroll
	RoleStaff   Role = "staff"   // Regular employee
)

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
