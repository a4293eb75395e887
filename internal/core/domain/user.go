package domain

// Role determines which data a user may see and which pages are reachable.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleFinanceAdmin Role = "finance_admin"
	RoleFinanceUser  Role = "finance_user"
)

// CanViewAll reports whether the role grants visibility over records created
// by other users. finance_user only sees its own records.
func (r Role) CanViewAll() bool {
	return r == RoleAdmin || r == RoleFinanceAdmin
}

// CanManageUsers reports whether the role may administer user accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleFinanceAdmin, RoleFinanceUser:
		return true
	}
	return false
}

// User represents a back-office user of the application.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	DisplayName  string `json:"displayName"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Principal is the already-authenticated actor a request runs as. It is
// resolved by the session layer (JWT middleware) and passed explicitly into
// the projection engine; the engine never reads global auth state.
type Principal struct {
	UserID      string `json:"userID"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Role        Role   `json:"role"`
}

// PrincipalOf derives the request principal for a user.
func PrincipalOf(u User) Principal {
	return Principal{
		UserID:      u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}
