package handlers

import (
	"mndmotors/internal/config"
	"mndmotors/internal/repos"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CarHandler     *CarHandler
	AuthHandler    *AuthHandler
	ContactHandler *ContactHandler
	PageHandler    *PageHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	carRepo := repos.NewCarRepo(db)
	adminRepo := repos.NewAdminRepo(db)
	contactRepo := repos.NewContactRepo(db)

	return &Deps{
		CarHandler:     &CarHandler{Cars: carRepo},
		AuthHandler:    &AuthHandler{Admins: adminRepo},
		ContactHandler: &ContactHandler{Contacts: contactRepo},
		PageHandler:    &PageHandler{Cars: carRepo, Contacts: contactRepo},
		AdminHandler:   &AdminHandler{Cars: carRepo},
	}
}
