package cart

import (
	"errors"
	"fmt"
)

var ErrOutOfStock = errors.New("variação sem estoque")

// ValidationError bloqueia a ação local; nenhuma chamada de rede é feita.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MissingVariantError aborta o checkout inteiro.
type MissingVariantError struct {
	Product string
}

func (e *MissingVariantError) Error() string {
	return fmt.Sprintf("Produto %q não possui variação selecionada.", e.Product)
}
