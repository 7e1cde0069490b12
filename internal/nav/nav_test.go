package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Muhammad-true/mm-shop-admin/internal/session"
)

func TestAvailableViewsPerRole(t *testing.T) {
	cases := []struct {
		role session.Role
		want []ViewID
	}{
		{session.RoleSuperAdmin, []ViewID{
			ViewDashboard, ViewProducts, ViewCategories, ViewUsers,
			ViewRoles, ViewOrders, ViewSettings,
		}},
		{session.RoleAdmin, []ViewID{
			ViewDashboard, ViewProducts, ViewCategories, ViewUsers,
			ViewOrders, ViewSettings,
		}},
		{session.RoleShopOwner, []ViewID{
			ViewDashboard, ViewProducts, ViewOrders, ViewSettings,
		}},
		{session.RoleUser, []ViewID{
			ViewDashboard, ViewProducts, ViewCategories,
		}},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			assert.Equal(t, tc.want, AvailableViews(tc.role))
		})
	}
}

func TestAllowedMatchesAvailableViews(t *testing.T) {
	roles := []session.Role{
		session.RoleSuperAdmin, session.RoleAdmin,
		session.RoleShopOwner, session.RoleUser,
	}
	for _, role := range roles {
		available := map[ViewID]bool{}
		for _, v := range AvailableViews(role) {
			available[v] = true
		}
		for _, v := range allViews {
			assert.Equal(t, available[v], Allowed(role, v),
				"role %s view %s", role, v)
		}
	}
}

func TestRolesViewIsSuperAdminOnly(t *testing.T) {
	assert.True(t, Allowed(session.RoleSuperAdmin, ViewRoles))
	assert.False(t, Allowed(session.RoleAdmin, ViewRoles))
	assert.False(t, Allowed(session.RoleShopOwner, ViewRoles))
	assert.False(t, Allowed(session.RoleUser, ViewRoles))
}

func TestFirstView(t *testing.T) {
	v, ok := FirstView(session.RoleShopOwner)
	assert.True(t, ok)
	assert.Equal(t, ViewDashboard, v)

	_, ok = FirstView(session.Role("nobody"))
	assert.False(t, ok)
}
