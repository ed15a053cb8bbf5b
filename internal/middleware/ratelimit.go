package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/odutech/internal/ratelimit"
)

// LoginRateLimit limita tentativas por IP. Falha do backend (redis fora
// do ar) libera a requisição.
func LoginRateLimit(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limit: %v", err)
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error_code": "too_many_requests",
				"message":    "Muitas tentativas. Aguarde um minuto.",
			})
			return
		}
		c.Next()
	}
}
