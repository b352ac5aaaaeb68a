package cart

import "github.com/shopspring/decimal"

// Session guarda o carrinho de um operador. Não é segura para uso concorrente,
// assim como a sessão de interface que ela representa.
type Session struct {
	cart Cart
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Add(line Line) {
	s.cart = s.cart.Add(line)
}

// AddManual valida antes de tocar no carrinho.
func (s *Session) AddManual(name string, price decimal.Decimal, qty int) error {
	line, err := NewManualLine(name, price, qty)
	if err != nil {
		return err
	}
	s.cart = s.cart.Add(line)
	return nil
}

func (s *Session) RemoveLast() {
	s.cart = s.cart.RemoveLast()
}

func (s *Session) Clear() {
	s.cart = s.cart.Clear()
}

func (s *Session) Cart() Cart {
	return s.cart
}

func (s *Session) Lines() []Line {
	return s.cart.Lines()
}

func (s *Session) Total() decimal.Decimal {
	return s.cart.Total()
}
