package domain

import "errors"

var ErrClientNotFound = errors.New("client not found")
var ErrInvalidRUT = errors.New("invalid RUT")
var ErrMissingFields = errors.New("missing required fields")

// Client is one customer record of the client registry. RUT is the identity
// key, stored in canonical normalized form ("12345678-5").
type Client struct {
	RUT          string     `json:"rut"`
	BusinessName string     `json:"razon_social"`
	Activity     string     `json:"giro,omitempty"`
	Phone        string     `json:"telefono,omitempty"`
	Email        string     `json:"email,omitempty"`
	Address      string     `json:"direccion,omitempty"`
	Commune      string     `json:"comuna,omitempty"`
	BankAccount  string     `json:"cuenta_corriente,omitempty"`
	Bank         string     `json:"banco,omitempty"`
	Notes        string     `json:"observaciones,omitempty"`
	Active       ActiveFlag `json:"activo"`
}
