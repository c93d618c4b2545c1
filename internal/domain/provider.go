package domain

// ProviderContact son los datos de contacto privados de un proveedor,
// visibles sólo tras una revelación pagada.
type ProviderContact struct {
	ProviderID string `json:"provider_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}
