package auth

// Role es el rol del principal autenticado.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Principal representa la información resuelta desde la cookie de sesión.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}
