package reporting

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrInvalidDate = errors.New("data inválida, use o formato AAAA-MM-DD")
	ErrFutureDate  = errors.New("a data não pode ser futura")

	// Erros de consulta
	ErrSellerNotFound = errors.New("vendedor não encontrado")

	// Erros de infraestrutura
	ErrFetchSellers = errors.New("erro ao buscar vendedores")
	ErrFetchSales   = errors.New("erro ao buscar vendas do vendedor")
	ErrEnqueueJob   = errors.New("erro ao enfileirar relatório")
)

// ReportError é um erro com contexto adicional do relatório
type ReportError struct {
	Err      error  // Erro base
	SellerID int64  // ID do vendedor envolvido (quando aplicável)
	Details  string // Detalhes adicionais
	cause    error
}

func (e *ReportError) Error() string {
	msg := e.Err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap expõe tanto o erro base quanto a causa de infraestrutura
func (e *ReportError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

func NewReportError(baseErr error, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Details: details,
	}
}

func NewSellerReportError(baseErr error, sellerID int64, cause error) *ReportError {
	return &ReportError{
		Err:      baseErr,
		SellerID: sellerID,
		Details:  fmt.Sprintf("vendedor %d", sellerID),
		cause:    cause,
	}
}

// IsValidationError verifica se o erro foi causado por entrada inválida
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrFutureDate)
}

// IsQueueError verifica se o erro ocorreu ao entregar o job para a fila
func IsQueueError(err error) bool {
	return errors.Is(err, ErrEnqueueJob)
}
