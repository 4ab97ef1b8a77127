package domain

// Session is the role-tagged value issued on a successful login.
type Session struct {
	Token    string `json:"token"`
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// LoginIdentity is what the store yields for an exact credential match,
// before the role name is resolved into the closed Role variant.
type LoginIdentity struct {
	UserID   int64
	Username string
	RoleName string
}
