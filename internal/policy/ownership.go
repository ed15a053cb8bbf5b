package policy

import "github.com/BruksfildServices01/odutech/internal/httperr"

// Ownable é implementado pelos models que pertencem a um usuário.
type Ownable interface {
	GetUserID() uint
}

// Owns é o único predicado de posse do sistema. Recurso nil ou de outro
// dono nunca é considerado do usuário.
func Owns(userID uint, resource Ownable) bool {
	if resource == nil || userID == 0 {
		return false
	}
	return resource.GetUserID() == userID
}

// Guard aplica Owns e traduz a falha para NotFound, para não revelar a
// existência de registros de outros usuários.
func Guard(userID uint, resource Ownable, notFoundMsg string) error {
	if !Owns(userID, resource) {
		return httperr.NotFoundErr(notFoundMsg)
	}
	return nil
}

// GuardAccount protege rotas que recebem explicitamente o id de uma conta.
func GuardAccount(userID, requestedID uint) error {
	if userID == 0 || userID != requestedID {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
