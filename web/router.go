package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
	"github.com/utkugunce/volleysim/controller"
)

func getRouter(ctrl controller.C, render *render.Render, adminUser, adminPass string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", leaguesHandler(ctrl, render))

	r.Route("/leagues/{leagueID}", func(r chi.Router) {
		r.Get("/", leagueHandler(ctrl, render))
		r.Get("/playoffs", playoffsHandler(ctrl, render))

		r.Route("/groups/{group}", func(r chi.Router) {
			r.Get("/", standingsHandler(ctrl, render))
			r.Get("/diff", diffHandler(ctrl, render))
			r.Get("/ratings", ratingsHandler(ctrl, render))

			r.Post("/scenario", saveScenarioHandler(ctrl, render))
			r.Post("/scenario/reset", resetScenarioHandler(ctrl, render))
			r.Post("/scenario/autofill", autoFillScenarioHandler(ctrl, render))
			r.Get("/scenario/export", exportScenarioHandler(ctrl, render))
			r.Post("/scenario/import", importScenarioHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("volleysim", map[string]string{adminUser: adminPass}))
		r.Use(middleware.Timeout(30 * time.Second)) // Set a longer timeout for /admin actions

		r.Post("/results", saveResultHandler(ctrl, render))
		r.Post("/refresh", refreshLeaguesHandler(ctrl, render))
	})

	return r
}
