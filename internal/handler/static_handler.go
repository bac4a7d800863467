package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// LandingPage is where the site root redirects to
const LandingPage = "/static/index.html"

// RegisterStaticRoutes serves dir under /static and redirects / to the landing page
func RegisterStaticRoutes(r chi.Router, dir string) {
	r.Get("/", RedirectToLanding)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
}

// RedirectToLanding handles GET /
func RedirectToLanding(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LandingPage, http.StatusTemporaryRedirect)
}
