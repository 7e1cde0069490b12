// Package http is the thin localhost shell: it translates browser
// requests into core calls and renders pure view models. No business
// logic lives here.
package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/auth"
	"github.com/Muhammad-true/mm-shop-admin/internal/editor"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/flash"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/handlers"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/nav"
	"github.com/Muhammad-true/mm-shop-admin/internal/session"
	"github.com/Muhammad-true/mm-shop-admin/internal/uploader"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/categories"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/dashboard"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/orders"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/roles"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/settings"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/users"
)

type Deps struct {
	Logger   *slog.Logger
	Sessions *session.Store
	Auth     *auth.Service
	Nav      *nav.Controller
	Flash    *flash.Codec
	Uploader uploader.Uploader
	Editor   *editor.EditSession

	Products   *products.Controller
	Categories *categories.Controller
	Users      *users.Controller
	Orders     *orders.Controller
	Dashboard  *dashboard.Controller
	Settings   *settings.Controller
	Roles      *roles.Controller
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.FlashMiddleware(d.Flash),
		middleware.ErrorHandler(d.Logger, d.Nav),
	)

	authH := handlers.NewAuthHandler(d.Auth, d.Nav, d.Sessions, d.Settings, d.Products)
	consoleH := handlers.NewConsoleHandler(d.Nav, d.Sessions, d.Settings)
	productsH := handlers.NewProductsHandler(d.Products)
	categoriesH := handlers.NewCategoriesHandler(d.Categories)
	usersH := handlers.NewUsersHandler(d.Users)
	ordersH := handlers.NewOrdersHandler(d.Orders)
	dashboardH := handlers.NewDashboardHandler(d.Dashboard)
	settingsH := handlers.NewSettingsHandler(d.Settings)
	rolesH := handlers.NewRolesHandler(d.Roles)
	editorH := handlers.NewEditorHandler(d.Editor, d.Products, d.Uploader)

	r.POST("/console/login", authH.Login)
	r.POST("/console/logout", authH.Logout)
	r.GET("/console/state", consoleH.State)

	con := r.Group("/console", middleware.RequireSession(d.Sessions))
	con.POST("/views/:view/activate", consoleH.Activate)

	dash := con.Group("", middleware.RequireView(d.Sessions, nav.ViewDashboard))
	dash.GET("/views/dashboard", dashboardH.State)

	prod := con.Group("", middleware.RequireView(d.Sessions, nav.ViewProducts))
	prod.GET("/views/products", productsH.List)
	prod.DELETE("/products/:id", productsH.Delete)
	prod.POST("/editor/open", editorH.Open)
	prod.POST("/editor/close", editorH.Close)
	prod.POST("/editor/variations", editorH.AddVariation)
	prod.DELETE("/editor/variations/:index", editorH.RemoveVariation)
	prod.PATCH("/editor/variations/:index", editorH.UpdateVariation)
	prod.POST("/editor/variations/:index/images", editorH.UploadImages)
	prod.DELETE("/editor/variations/:index/images", editorH.RemoveImage)
	prod.POST("/editor/submit", editorH.Submit)

	cat := con.Group("", middleware.RequireView(d.Sessions, nav.ViewCategories))
	cat.GET("/views/categories", categoriesH.List)
	cat.POST("/categories", categoriesH.Create)
	cat.PUT("/categories/:id", categoriesH.Update)
	cat.DELETE("/categories/:id", categoriesH.Delete)

	usr := con.Group("", middleware.RequireView(d.Sessions, nav.ViewUsers))
	usr.GET("/views/users", usersH.List)
	usr.PUT("/users/:id", usersH.Update)
	usr.DELETE("/users/:id", usersH.Delete)

	rol := con.Group("", middleware.RequireView(d.Sessions, nav.ViewRoles))
	rol.GET("/views/roles", rolesH.List)

	ord := con.Group("", middleware.RequireView(d.Sessions, nav.ViewOrders))
	ord.GET("/views/orders", ordersH.List)
	ord.POST("/orders/:id/confirm", ordersH.Confirm)
	ord.POST("/orders/:id/reject", ordersH.Reject)
	ord.PUT("/orders/:id/status", ordersH.UpdateStatus)

	set := con.Group("", middleware.RequireView(d.Sessions, nav.ViewSettings))
	set.GET("/views/settings", settingsH.State)
	set.PUT("/profile", settingsH.Update)

	return r
}
