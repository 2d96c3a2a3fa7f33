package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"meetpay/internal/app/handler"
	mw "meetpay/internal/app/middleware"
)

func (a *App) Router() http.Handler {

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(mw.Log(a.logger))

	uh := handler.NewUserHandler(a.users, a.session)
	mh := handler.NewMovementHandler(a.movements)
	wh := handler.NewWalletHandler(a.wallets)
	eh := handler.NewEventHandler(a.engine, a.meets, a.guard, a.config.Events.Secret)

	r.Route("/user", func(r chi.Router) {
		r.Post("/login", uh.Login)
		r.Post("/register", uh.Register)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(mw.Auth(a.session))
		r.Get("/movements", mh.List)
		r.Get("/wallet", wh.Balance)
		r.Post("/wallet/withdraw", wh.Withdraw)
	})

	// change-feed forwarder, shared-secret guarded
	r.Post("/events/meet", eh.Meet)

	return r
}
