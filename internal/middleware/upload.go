package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodySize corta o corpo da requisição em limit bytes. A leitura além
// do limite falha e o handler responde 413.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > limit {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error_code": "payload_too_large",
				"message":    "Arquivo maior que o limite permitido.",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
