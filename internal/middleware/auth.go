package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/odutech/internal/config"
	"github.com/BruksfildServices01/odutech/internal/httperr"
)

const ContextUserID = "userID"

const TokenTTL = 24 * time.Hour

func unauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: code, Message: message})
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(c, "invalid_token", "Sessão expirada ou inválida.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "invalid_token_claims", "Sessão expirada ou inválida.")
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok || userID <= 0 {
			unauthorized(c, "invalid_token_payload", "Sessão expirada ou inválida.")
			return
		}

		c.Set(ContextUserID, uint(userID))
		c.Next()
	}
}

// IssueToken assina o JWT da sessão; "sub" carrega o id do usuário.
func IssueToken(cfg *config.Config, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(TokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func CurrentUserID(c *gin.Context) uint {
	return c.MustGet(ContextUserID).(uint)
}
