package dto

// AddContactoRequest adds a hub contact. The phone is normalized to + and
// digits before lookup or storage.
type AddContactoRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Cargo    string `json:"cargo"`
	Telefono string `json:"telefono" validate:"required"`
}

// UpdateContactoRequest patches a contact; only present fields change.
type UpdateContactoRequest struct {
	Nombre   *string `json:"nombre"`
	Cargo    *string `json:"cargo"`
	Telefono *string `json:"telefono"`
}

type ContactoDTO struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Cargo     string `json:"cargo"`
	Telefono  string `json:"telefono"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ContactosListResponse struct {
	Hub   string        `json:"hub"`
	Items []ContactoDTO `json:"items"`
}
