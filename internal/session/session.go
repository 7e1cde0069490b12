package session

import "time"

// Role mirrors the role names issued by the mm-shop API.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleShopOwner  Role = "shop_owner"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleShopOwner, RoleUser:
		return true
	}
	return false
}

// Session is the authenticated state gating every console operation.
// Token and Role are both set or both zero.
type Session struct {
	Token        string
	Role         Role
	LastActivity time.Time
}

// IdleWindow is how long a session survives without user activity.
const IdleWindow = 24 * time.Hour

func (s Session) Present() bool { return s.Token != "" && s.Role != "" }

// IsExpired is a pure check against the idle window; it never touches storage.
func (s Session) IsExpired(now time.Time) bool {
	return now.Sub(s.LastActivity) > IdleWindow
}
