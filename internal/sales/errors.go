package sales

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrItemNotFound      = errors.New("item não encontrado na venda")
	ErrSameVariant       = errors.New("a nova variação é igual à atual")
	ErrVariantNotFound   = errors.New("variação não encontrada")
	ErrCustomerNotFound  = errors.New("cliente não encontrado")
	ErrInvalid           = errors.New("dados inválidos")
)

// HTTPError traduz os erros do serviço para fiber.Error com a mensagem completa.
func HTTPError(err error) error {
	var fe *fiber.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, ErrSaleNotFound), errors.Is(err, ErrItemNotFound),
		errors.Is(err, ErrVariantNotFound), errors.Is(err, ErrCustomerNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ErrInsufficientStock):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrSameVariant), errors.Is(err, ErrInvalid):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
