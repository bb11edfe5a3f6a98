package panel

import "github.com/Jesus1025/registro-interno/internal/core/domain"

// Profile mirrors the wire shape of /api/usuarios records.
type Profile struct {
	ID        string            `json:"id,omitempty"`
	Username  string            `json:"username"`
	Name      string            `json:"nombre"`
	Email     string            `json:"email,omitempty"`
	Role      string            `json:"rol"`
	Active    domain.ActiveFlag `json:"activo"`
	CreatedAt string            `json:"fecha_creacion,omitempty"`
}

// ClientRecord mirrors the wire shape of /api/clientes records.
type ClientRecord struct {
	RUT          string            `json:"rut"`
	BusinessName string            `json:"razon_social"`
	Activity     string            `json:"giro,omitempty"`
	Phone        string            `json:"telefono,omitempty"`
	Email        string            `json:"email,omitempty"`
	Address      string            `json:"direccion,omitempty"`
	Commune      string            `json:"comuna,omitempty"`
	BankAccount  string            `json:"cuenta_corriente,omitempty"`
	Bank         string            `json:"banco,omitempty"`
	Notes        string            `json:"observaciones,omitempty"`
	Active       domain.ActiveFlag `json:"activo"`
}
