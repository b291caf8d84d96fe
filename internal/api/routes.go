package api

import (
	"net/http"

	"github.com/JaimeStill/lexi/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Documents.Handler().Routes(),
		domain.Classifications.Handler().Routes(),
		domain.Assistant.Handler().Routes(),
		domain.Sessions.Handler().Routes(),
	)
}
