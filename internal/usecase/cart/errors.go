package cart

import "fmt"

// Notification texts shown to the shopper.
const (
	MsgOutOfStock   = "Quantidade solicitada fora de estoque"
	MsgAddFailed    = "Erro na adição do produto"
	MsgRemoveFailed = "Erro na remoção do produto"
	MsgUpdateFailed = "Erro na alteração de quantidade do produto"
)

type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
)

// OperationError carries the notification for a failed cart mutation
// together with its cause.
type OperationError struct {
	Op      Op
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("cart %s: %s: %v", e.Op, e.Message, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
