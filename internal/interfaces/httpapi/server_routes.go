package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerScoutRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/filters", handler.ListFilterOptions)
	mux.HandleFunc("GET /v1/players/{name}/similar", handler.FindSimilarPlayers)
	mux.HandleFunc("GET /v1/teams/{team}/recommendations", handler.RecommendPlayers)
	mux.HandleFunc("GET /v1/teams/{team}/replacements", handler.ReplacementReport)
}
