package httperr

import "errors"

const (
	CodeValidation    = "validation_error"
	CodeNotFound      = "not_found"
	CodeForbidden     = "forbidden"
	CodeHasDependents = "has_dependents"
	CodeStorageWrite  = "storage_write_error"
	CodeDuplicateUser = "duplicate_user"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func Validation(message string) error {
	return BusinessError{Code: CodeValidation, Message: message}
}

func NotFoundErr(message string) error {
	return BusinessError{Code: CodeNotFound, Message: message}
}

// StorageWrite embrulha a falha de I/O original para que o chamador
// ainda consiga inspecioná-la com errors.Is/As.
func StorageWrite(cause error) error {
	return &storageError{cause: cause}
}

type storageError struct {
	cause error
}

func (e *storageError) Error() string {
	return CodeStorageWrite + ": " + e.cause.Error()
}

func (e *storageError) Unwrap() error { return e.cause }

func (e *storageError) As(target any) bool {
	if be, ok := target.(*BusinessError); ok {
		*be = BusinessError{Code: CodeStorageWrite, Message: "Falha ao gravar o arquivo."}
		return true
	}
	return false
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// CodeOf devolve o código de negócio de err ou "" quando não há.
func CodeOf(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
