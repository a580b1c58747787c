package web

import (
	"github.com/alexedwards/scs"
	"github.com/sidereusnuntius/blocipedia/internal/billing"
	"github.com/sidereusnuntius/blocipedia/internal/config"
	"github.com/sidereusnuntius/blocipedia/internal/service"
)

const (
	LoginRoute  = "/login"
	LogoutRoute = "/logout"
	SignUpRoute = "/signup"
	WikisPath   = "/wikis"
	UsersPath   = "/users"
	ChargesPath = "/charges"
	BillingPath = "/billing"
)

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
	// Billing routes verified webhook events to their handlers.
	Billing *billing.Router
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager, billing *billing.Router) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
		Billing:        billing,
	}
}
