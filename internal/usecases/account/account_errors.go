package account

import "errors"

var (
	ErrBusinessNotFound = errors.New("negócio não encontrado")
	ErrNotOwner         = errors.New("usuário não é dono deste negócio")
)
