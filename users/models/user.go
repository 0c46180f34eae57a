package models

// User is a registered account. The password hash never leaves the
// repository layer.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// Credentials carries the stored hash for authentication only.
type Credentials struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	IsAdmin      bool   `db:"is_admin"`
}

// UserDetail is a user plus the ids of jobs they applied to.
type UserDetail struct {
	User
	Applications []int64 `json:"applications"`
}

// RegisterRequest is the POST /auth/register body. Registration never
// grants admin.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// LoginRequest is the POST /auth/token body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUserRequest is the admin-only POST /users body; unlike
// registration it can grant admin.
type CreateUserRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"isAdmin"`
}
