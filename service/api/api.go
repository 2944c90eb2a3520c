package api

import (
	"net/http"

	"transmart_relay/config"
	"transmart_relay/pkg/logger"
	"transmart_relay/service/api/translate"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the single relay endpoint. The relay answers on any
// path so it can sit behind whatever prefix the host routes to it.
func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	// Basic CORS. OptionsPassthrough lets the preflight handler emit
	// the JSON envelope body instead of an empty 200.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:     []string{"Content-Type"},
		AllowCredentials:   false,
		MaxAge:             300,
		OptionsPassthrough: true,
	}))

	r.Options("/*", translate.Preflight)
	r.Post("/*", translate.Translate)

	// Every other method is rejected with the fixed 400 envelope.
	r.MethodNotAllowed(translate.MethodNotAllowed)

	return r
}

func Run() {
	defer logger.Close()

	logger.Logger.Info("relay listening", "addr", config.Cfg.Server.Addr, "upstream", config.Cfg.Upstream.Endpoint)

	if err := http.ListenAndServe(config.Cfg.Server.Addr, NewRouter()); err != nil {
		logger.Logger.Error("server stopped", "error", err.Error())
	}
}
