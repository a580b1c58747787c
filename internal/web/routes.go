package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sidereusnuntius/blocipedia/internal/policy"
)

func (h *Handler) Mount(r chi.Router) {
	if h.Config.Debug {
		r.Use(RequestLogger)
	}
	r.Use(SessionMiddleware(h))

	r.Get(LoginRoute, GetLogin(h))
	r.Post(LoginRoute, Login(h))
	r.Get(LogoutRoute, Logout(h))
	r.Get(SignUpRoute, GetSignup(h))
	r.Post(SignUpRoute, SignUp(h))

	r.Route(WikisPath, func(r chi.Router) {
		r.With(h.Guard(policy.Index)).Get("/", ListWikis(h))
		r.With(h.Guard(policy.New)).Get("/new", NewWiki(h))
		r.With(h.Guard(policy.Create)).Post("/", CreateWiki(h))

		r.Route("/{id}", func(r chi.Router) {
			r.With(h.Guard(policy.Show)).Get("/", ShowWiki(h))
			r.With(h.Guard(policy.History)).Get("/history", WikiHistory(h))
			r.With(h.Guard(policy.Edit)).Get("/edit", EditWiki(h))
			r.With(h.Guard(policy.Update)).Patch("/", UpdateWiki(h))
			r.With(h.Guard(policy.Update)).Put("/", UpdateWiki(h))
			r.With(h.Guard(policy.Destroy)).Delete("/", DestroyWiki(h))
		})
	})

	r.Route(UsersPath+"/{id}", func(r chi.Router) {
		r.With(h.GuardUser(policy.SetAdmin)).Patch("/admin", SetAdmin(h))
		r.With(h.GuardUser(policy.LinkBilling)).Put("/billing", LinkBilling(h))
	})

	r.With(h.Guard(policy.ListCharges)).Get(ChargesPath, ListCharges(h))

	r.Route(BillingPath, func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.corsMiddleware())
			r.Get("/config", BillingConfig(h))
			// Answered by the CORS middleware.
			r.Options("/config", http.NotFound)
		})
		r.Post("/events", BillingWebhook(h))
	})
}

// corsMiddleware lets the configured origins read public endpoints from the browser.
func (h *Handler) corsMiddleware() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.Config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
