package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jasaku/internal/domain"
)

// WalletRepository define el contrato de persistencia del saldo. El débito
// condicional es la única operación crítica: chequeo y resta deben ser un solo
// paso atómico para que dos revelaciones concurrentes no pasen ambas con un
// saldo viejo.
type WalletRepository interface {
	Get(ctx context.Context, userID string) (domain.Wallet, error)
	Credit(ctx context.Context, userID string, amount int64) (domain.Wallet, error)
	DebitIfSufficient(ctx context.Context, userID string, amount int64) (domain.Wallet, bool, error)
}

type PgWalletRepository struct {
	pool *pgxpool.Pool
}

func NewPgWalletRepository(pool *pgxpool.Pool) *PgWalletRepository {
	return &PgWalletRepository{pool: pool}
}

func (r *PgWalletRepository) Get(ctx context.Context, userID string) (domain.Wallet, error) {
	const query = `
		SELECT user_id, balance, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w domain.Wallet
	err := r.pool.QueryRow(ctx, query, userID).Scan(&w.UserID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		return domain.Wallet{}, err
	}
	return w, nil
}

func (r *PgWalletRepository) Credit(ctx context.Context, userID string, amount int64) (domain.Wallet, error) {
	const query = `
		INSERT INTO wallets (user_id, balance, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET balance = wallets.balance + $2, updated_at = NOW()
		RETURNING user_id, balance, updated_at
	`

	var w domain.Wallet
	err := r.pool.QueryRow(ctx, query, userID, amount).Scan(&w.UserID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		return domain.Wallet{}, err
	}
	return w, nil
}

// DebitIfSufficient resta el monto sólo si el saldo alcanza, en un único
// UPDATE condicional. Devuelve el wallet resultante y si el débito se aplicó.
func (r *PgWalletRepository) DebitIfSufficient(ctx context.Context, userID string, amount int64) (domain.Wallet, bool, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE user_id = $1 AND balance >= $2
		RETURNING user_id, balance, updated_at
	`

	var w domain.Wallet
	err := r.pool.QueryRow(ctx, query, userID, amount).Scan(&w.UserID, &w.Balance, &w.UpdatedAt)
	if err == nil {
		return w, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Wallet{}, false, err
	}

	// Sin fila afectada: saldo insuficiente o wallet inexistente.
	w, err = r.Get(ctx, userID)
	if err != nil {
		return domain.Wallet{}, false, err
	}
	return w, false, nil
}
