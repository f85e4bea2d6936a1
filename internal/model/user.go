package model

// RoleAdmin gates the admin panel and the approve/reject actions.
const RoleAdmin = "admin"

// User is the authenticated account, owned by the auth collaborator and
// consumed read-only. Cached locally alongside the bearer token and rebuilt
// from every successful "who am I" probe.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
