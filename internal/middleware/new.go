package middleware

import (
	"career-roadmap-generator/config"
	"career-roadmap-generator/pkg/log"

	"golang.org/x/time/rate"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rate.Limiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	perMin := cfg.RateLimit.GeneratePerMin
	if perMin <= 0 {
		perMin = 30
	}
	burst := cfg.RateLimit.Burst
	if burst <= 0 {
		burst = 5
	}

	return Middleware{
		l:       l,
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), burst),
	}
}
