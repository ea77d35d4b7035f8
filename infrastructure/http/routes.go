package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"web3admin/frontend/admins"
	"web3admin/frontend/blogs"
	"web3admin/frontend/contacts"
	"web3admin/frontend/creators"
	"web3admin/frontend/dashboard"
	"web3admin/frontend/events"
	"web3admin/frontend/exports"
	"web3admin/frontend/help"
	"web3admin/frontend/login"
	"web3admin/frontend/newsletter"
	"web3admin/frontend/projects"
	"web3admin/frontend/resources"
	"web3admin/frontend/settings"
	"web3admin/frontend/showcase"
	"web3admin/frontend/shared/crud"
	"web3admin/infrastructure/rbac"
)

// Entities lists the managed collections in sidebar order.
func Entities() []crud.Entity {
	return []crud.Entity{
		events.Entity(),
		creators.Entity(),
		projects.Entity(),
		resources.Entity(),
		blogs.Entity(),
		showcase.Entity(),
		newsletter.Entity(),
		contacts.Entity(),
		admins.Entity(),
	}
}

// RegisterLoginRoutes registers login/logout routes.
func (s *Server) RegisterLoginRoutes() {
	s.router.Get("/login", login.GetLoginScreenHandler(s.Session, s.Browsers, s.Flash))
	s.router.Post("/login", login.CreateLoginHandler(s.Session, s.Browsers, s.LoginLimiter, s.Flash))
	s.router.Post("/logout", login.LogoutHandler(s.Session, s.Browsers, s.Flash))
}

// RegisterDashboardRoutes registers the overview and account settings.
func (s *Server) RegisterDashboardRoutes(r chi.Router) {
	s.Rbac.Add("DASHBOARD_VIEW", http.MethodGet, "/dashboard", rbac.AllRoles...)
	r.Get("/", dashboard.DashboardPageQueryHandler(s.API, s.Audit, s.Flash))

	s.Rbac.Add("SETTINGS_VIEW", http.MethodGet, "/dashboard/settings", rbac.AllRoles...)
	r.Get("/settings", settings.SettingsPageQueryHandler(s.Flash))
	s.Rbac.Add("SETTINGS_VIEW", http.MethodPost, "/dashboard/settings/password", rbac.AllRoles...)
	r.Post("/settings/password", settings.ChangePasswordCommandHandler(s.API, s.Audit, s.Flash))

	s.Rbac.Add("EXPORTS_VIEW", http.MethodGet, "/dashboard/exports", rbac.AllRoles...)
	r.Get("/exports", exports.ExportsPageQueryHandler(Entities(), s.Flash))

	s.Rbac.Add("HELP_VIEW", http.MethodGet, "/dashboard/help", rbac.AllRoles...)
	r.Get("/help", help.HelpPageQueryHandler(s.Rbac, s.Flash))
}

// RegisterEntityRoutes registers the CRUD pages of every entity, granting
// only the actions its Caps enable.
func (s *Server) RegisterEntityRoutes(r chi.Router) {
	for _, e := range Entities() {
		s.registerEntity(r, e)
	}
}

func (s *Server) registerEntity(r chi.Router, e crud.Entity) {
	ctl := crud.NewController(e, s.API, s.Audit, s.Flash)
	base := "/" + e.Slug
	full := e.Path()
	roles := e.AllowedRoles()

	s.Rbac.Add(e.Code(crud.ActionList), http.MethodGet, full, roles...)
	r.Get(base, ctl.ListPageQueryHandler())
	s.Rbac.Add(e.Code(crud.ActionList), http.MethodGet, full+"/table", roles...)
	r.Get(base+"/table", ctl.TableFragmentQueryHandler())

	if e.Caps.Export {
		s.Rbac.Add(e.Code(crud.ActionExport), http.MethodGet, full+"/export.csv", roles...)
		r.Get(base+"/export.csv", ctl.ExportQueryHandler("csv"))
		s.Rbac.Add(e.Code(crud.ActionExport), http.MethodGet, full+"/export.pdf", roles...)
		r.Get(base+"/export.pdf", ctl.ExportQueryHandler("pdf"))
	}
	if e.Caps.Create {
		s.Rbac.Add(e.Code(crud.ActionCreate), http.MethodGet, full+"/new", roles...)
		r.Get(base+"/new", ctl.NewFormQueryHandler())
		s.Rbac.Add(e.Code(crud.ActionCreate), http.MethodPost, full, roles...)
		r.Post(base, ctl.SaveCommandHandler())
	}
	if e.Caps.Edit {
		s.Rbac.Add(e.Code(crud.ActionEdit), http.MethodGet, full+"/*/edit", roles...)
		r.Get(base+"/{id}/edit", ctl.EditFormQueryHandler())
		s.Rbac.Add(e.Code(crud.ActionEdit), http.MethodPost, full+"/*", roles...)
		r.Post(base+"/{id}", ctl.SaveCommandHandler())
	}
	if e.Caps.Delete {
		s.Rbac.Add(e.Code(crud.ActionDelete), http.MethodGet, full+"/*/delete", roles...)
		r.Get(base+"/{id}/delete", ctl.DeleteConfirmQueryHandler())
		s.Rbac.Add(e.Code(crud.ActionDelete), http.MethodPost, full+"/*/delete", roles...)
		r.Post(base+"/{id}/delete", ctl.DeleteCommandHandler())
	}
	if e.Caps.View {
		s.Rbac.Add(e.Code(crud.ActionView), http.MethodGet, full+"/*", roles...)
		r.Get(base+"/{id}", ctl.DetailQueryHandler())
	}
	if len(e.Statuses) > 0 {
		s.Rbac.Add(e.Code(crud.ActionStatus), http.MethodPost, full+"/*/status", roles...)
		r.Post(base+"/{id}/status", ctl.StatusCommandHandler())
	}
}
