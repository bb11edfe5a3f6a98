package handler

// saveClientRequest is the client form payload for POST /api/clientes. The
// RUT may arrive with any punctuation; the service normalizes it.
type saveClientRequest struct {
	RUT          string `json:"rut"          validate:"required,rut"`
	BusinessName string `json:"razon_social" validate:"required"`
	Activity     string `json:"giro"`
	Phone        string `json:"telefono"`
	Email        string `json:"email"        validate:"omitempty,email"`
	Address      string `json:"direccion"`
	Commune      string `json:"comuna"`
	BankAccount  string `json:"cuenta_corriente"`
	Bank         string `json:"banco"`
	Notes        string `json:"observaciones"`
}

// updateClientRequest is the partial-field payload for PUT /api/clientes/:rut.
// Absent fields are left unchanged.
type updateClientRequest struct {
	BusinessName *string `json:"razon_social"`
	Activity     *string `json:"giro"`
	Phone        *string `json:"telefono"`
	Email        *string `json:"email" validate:"omitempty"`
	Address      *string `json:"direccion"`
	Commune      *string `json:"comuna"`
	BankAccount  *string `json:"cuenta_corriente"`
	Bank         *string `json:"banco"`
	Notes        *string `json:"observaciones"`
}
