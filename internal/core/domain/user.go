package domain

// User is an operator of the system. PasswordHash never leaves the service
// layer.
type User struct {
	ID           string
	Name         string
	Role         string
	Avatar       string
	Phone        string
	Email        string
	PasswordHash string
	State        State
}

const RoleAdmin = "admin"
