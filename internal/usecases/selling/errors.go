package selling

import (
	"errors"
	"fmt"
)

var (
	ErrSellerNotFound    = errors.New("vendedor não encontrado")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

const (
	msgEmailTaken     = "O e-mail informado já está em uso."
	msgSellerInvalid  = "O vendedor selecionado é inválido."
	msgAmountRange    = "O campo amount deve estar entre 0.01 e 99999999.99."
	msgSaleDateFuture = "O campo sale_date não pode ser uma data futura."
	msgAmountScale    = "O campo amount deve ter no máximo 2 casas decimais."
)

// databaseError mantém tanto o erro de domínio quanto a causa original na cadeia
func databaseError(err error) error {
	return fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
}
