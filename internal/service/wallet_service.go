package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"jasaku/internal/domain"
	"jasaku/internal/repository"
)

// WalletService maneja el saldo del usuario y la revelación pagada de
// contactos. El chequeo-y-débito es atómico a nivel de repositorio: el saldo
// nunca queda negativo aunque lleguen intentos concurrentes.
type WalletService struct {
	wallets  repository.WalletRepository
	contacts repository.ProviderRepository
	grants   RevealGrantStore
	fee      int64
	grantTTL time.Duration
}

var (
	ErrWalletServiceNotConfigured = errors.New("wallet service not configured")
	ErrWalletInvalidInput         = errors.New("wallet invalid input")
	ErrWalletInvalidAmount        = errors.New("wallet invalid amount")
)

func NewWalletService(wallets repository.WalletRepository, contacts repository.ProviderRepository, grants RevealGrantStore, fee int64, grantTTL time.Duration) *WalletService {
	if fee <= 0 {
		fee = domain.DefaultContactFee
	}
	if grantTTL <= 0 {
		grantTTL = 12 * time.Hour
	}
	return &WalletService{
		wallets:  wallets,
		contacts: contacts,
		grants:   grants,
		fee:      fee,
		grantTTL: grantTTL,
	}
}

// ContactFee devuelve la tarifa vigente por revelación.
func (s *WalletService) ContactFee() int64 {
	if s == nil {
		return domain.DefaultContactFee
	}
	return s.fee
}

func (s *WalletService) Balance(ctx context.Context, userID string) (domain.Wallet, error) {
	if s == nil || s.wallets == nil {
		return domain.Wallet{}, ErrWalletServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Wallet{}, ErrWalletInvalidInput
	}
	return s.wallets.Get(ctx, userID)
}

// TopUp acredita un monto positivo al saldo. Es incondicional y aditivo; la
// verificación de pago externa queda fuera de este servicio.
func (s *WalletService) TopUp(ctx context.Context, userID string, amount int64) (domain.Wallet, error) {
	if s == nil || s.wallets == nil {
		return domain.Wallet{}, ErrWalletServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.Wallet{}, ErrWalletInvalidInput
	}
	if amount <= 0 {
		return domain.Wallet{}, ErrWalletInvalidAmount
	}
	return s.wallets.Credit(ctx, userID, amount)
}

// AttemptReveal intenta desbloquear el contacto de un proveedor cobrando la
// tarifa. Una revelación ya otorgada es terminal dentro de su ventana: volver
// a pedirla no cobra de nuevo. Fondos insuficientes no es un error sino una
// decisión denegada que lleva las denominaciones de recarga.
func (s *WalletService) AttemptReveal(ctx context.Context, userID, providerID string) (domain.RevealDecision, error) {
	if s == nil || s.wallets == nil || s.contacts == nil {
		return domain.RevealDecision{}, ErrWalletServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	providerID = strings.TrimSpace(providerID)
	if userID == "" || providerID == "" {
		return domain.RevealDecision{}, ErrWalletInvalidInput
	}

	contact, err := s.contacts.GetContact(ctx, providerID)
	if err != nil {
		return domain.RevealDecision{}, err
	}

	if s.grants != nil {
		granted, err := s.grants.IsGranted(userID, providerID)
		if err == nil && granted {
			wallet, err := s.wallets.Get(ctx, userID)
			if err != nil {
				return domain.RevealDecision{}, err
			}
			return domain.RevealDecision{
				Status:     domain.RevealGranted,
				NewBalance: wallet.Balance,
				Contact:    &contact,
			}, nil
		}
	}

	wallet, ok, err := s.wallets.DebitIfSufficient(ctx, userID, s.fee)
	if err != nil {
		return domain.RevealDecision{}, err
	}
	if !ok {
		return domain.RevealDecision{
			Status:       domain.RevealDeniedInsufficientFunds,
			NewBalance:   wallet.Balance,
			TopUpOptions: domain.TopUpDenominations,
		}, nil
	}

	if s.grants != nil {
		_ = s.grants.Grant(userID, providerID, s.grantTTL)
	}

	return domain.RevealDecision{
		Status:     domain.RevealGranted,
		NewBalance: wallet.Balance,
		Contact:    &contact,
	}, nil
}
