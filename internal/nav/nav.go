package nav

import "github.com/Muhammad-true/mm-shop-admin/internal/session"

// ViewID names one tab of the console.
type ViewID string

const (
	ViewDashboard  ViewID = "dashboard"
	ViewProducts   ViewID = "products"
	ViewCategories ViewID = "categories"
	ViewUsers      ViewID = "users"
	ViewRoles      ViewID = "roles"
	ViewOrders     ViewID = "orders"
	ViewSettings   ViewID = "settings"
)

// allViews is the display order; AvailableViews preserves it so "first
// available" is stable per role.
var allViews = []ViewID{
	ViewDashboard, ViewProducts, ViewCategories, ViewUsers,
	ViewRoles, ViewOrders, ViewSettings,
}

// roleViews is the one place role → view visibility is decided. Every
// other component asks Allowed instead of re-deriving from role strings.
var roleViews = map[session.Role]map[ViewID]bool{
	session.RoleSuperAdmin: {
		ViewDashboard: true, ViewProducts: true, ViewCategories: true,
		ViewUsers: true, ViewRoles: true, ViewOrders: true, ViewSettings: true,
	},
	session.RoleAdmin: {
		ViewDashboard: true, ViewProducts: true, ViewCategories: true,
		ViewUsers: true, ViewOrders: true, ViewSettings: true,
	},
	session.RoleShopOwner: {
		ViewDashboard: true, ViewProducts: true, ViewOrders: true, ViewSettings: true,
	},
	session.RoleUser: {
		ViewDashboard: true, ViewProducts: true, ViewCategories: true,
	},
}

// AvailableViews returns the fixed, ordered set of views a role may open.
func AvailableViews(role session.Role) []ViewID {
	allowed := roleViews[role]
	out := make([]ViewID, 0, len(allowed))
	for _, v := range allViews {
		if allowed[v] {
			out = append(out, v)
		}
	}
	return out
}

// Allowed reports whether role may open view v.
func Allowed(role session.Role, v ViewID) bool {
	return roleViews[role][v]
}

// FirstView is the landing view for a role.
func FirstView(role session.Role) (ViewID, bool) {
	vs := AvailableViews(role)
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}
