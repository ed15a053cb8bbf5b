package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var defaultMessages = map[string]string{
	CodeValidation:    "Dados inválidos.",
	CodeNotFound:      "Registro não encontrado.",
	CodeForbidden:     "Acesso negado.",
	CodeHasDependents: "Registro possui vínculos e não pode ser excluído.",
	CodeStorageWrite:  "Falha ao gravar o arquivo.",
	CodeDuplicateUser: "Já existe um usuário com esse username ou e-mail.",
}

// StatusFor traduz um código de negócio para o status HTTP.
func StatusFor(code string) int {
	switch code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeHasDependents, CodeDuplicateUser:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// FromError escreve a resposta adequada para err. Erros que não são de
// negócio viram 500 com fallbackCode e são registrados no log.
func FromError(c *gin.Context, err error, fallbackCode string) {
	var be BusinessError
	if !errors.As(err, &be) {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		Internal(c, fallbackCode, "Erro interno.")
		return
	}

	msg := be.Message
	if msg == "" {
		msg = defaultMessages[be.Code]
	}
	if be.Code == CodeStorageWrite {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	Write(c, StatusFor(be.Code), be.Code, msg)
}
