package pdvclient

import "fmt"

// NetworkError cobre falha de transporte e respostas fora de 2xx.
// Status é 0 quando a requisição nem chegou ao servidor.
type NetworkError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }
