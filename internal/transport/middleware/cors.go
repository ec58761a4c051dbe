package middleware

import (
	"strings"

	"github.com/rs/cors"
	"github.com/samber/lo"

	"github.com/rbradwell/language-learning/internal/config"
)

// CORS handles preflight requests and sets Access-Control headers for the
// configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   splitList(cfg.AllowedOrigins),
		AllowedMethods:   splitList(cfg.AllowedMethods),
		AllowedHeaders:   splitList(cfg.AllowedHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(v string, _ int) string {
		return strings.TrimSpace(v)
	}))
}
