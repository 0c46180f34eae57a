package types

// HTTP header constants
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// Authentication constants
const BearerPrefix = "Bearer "

// UserCtxName is the fiber Locals key holding the authenticated UserContext.
const UserCtxName = "user"

// UserContext carries the authenticated identity extracted from a JWT.
type UserContext struct {
	Username string
	IsAdmin  bool
}
