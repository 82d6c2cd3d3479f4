package middleware

import (
	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/database"
	"github.com/tinadigital/webquest/internal/logger"
)

// Middleware holds all HTTP middleware
type Middleware struct {
	rdb *database.Redis // nil disables rate limiting
	log *logger.Logger
	cfg *config.Config
}

// New creates a new Middleware instance
func New(rdb *database.Redis, log *logger.Logger, cfg *config.Config) *Middleware {
	return &Middleware{
		rdb: rdb,
		log: log,
		cfg: cfg,
	}
}
