package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"jasaku/internal/domain"
)

// ProviderRepository expone los datos de contacto privados de un proveedor.
type ProviderRepository interface {
	GetContact(ctx context.Context, providerID string) (domain.ProviderContact, error)
}

type PgProviderRepository struct {
	pool *pgxpool.Pool
}

func NewPgProviderRepository(pool *pgxpool.Pool) *PgProviderRepository {
	return &PgProviderRepository{pool: pool}
}

func (r *PgProviderRepository) GetContact(ctx context.Context, providerID string) (domain.ProviderContact, error) {
	const query = `
		SELECT provider_id, name, phone, email
		FROM provider_contacts
		WHERE provider_id = $1
	`

	var c domain.ProviderContact
	err := r.pool.QueryRow(ctx, query, providerID).Scan(&c.ProviderID, &c.Name, &c.Phone, &c.Email)
	if err != nil {
		return domain.ProviderContact{}, err
	}
	return c, nil
}
