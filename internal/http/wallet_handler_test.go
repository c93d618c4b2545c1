package http

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"jasaku/internal/domain"
)

type mockWalletStore struct {
	mu       sync.Mutex
	balances map[string]int64
}

func newMockWalletStore(balances map[string]int64) *mockWalletStore {
	if balances == nil {
		balances = make(map[string]int64)
	}
	return &mockWalletStore{balances: balances}
}

func (m *mockWalletStore) Get(_ context.Context, userID string) (domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.Wallet{UserID: userID, Balance: m.balances[userID], UpdatedAt: time.Now().UTC()}, nil
}

func (m *mockWalletStore) Credit(_ context.Context, userID string, amount int64) (domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[userID] += amount
	return domain.Wallet{UserID: userID, Balance: m.balances[userID], UpdatedAt: time.Now().UTC()}, nil
}

func (m *mockWalletStore) DebitIfSufficient(_ context.Context, userID string, amount int64) (domain.Wallet, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	balance := m.balances[userID]
	if balance < amount {
		return domain.Wallet{UserID: userID, Balance: balance}, false, nil
	}
	balance -= amount
	m.balances[userID] = balance
	return domain.Wallet{UserID: userID, Balance: balance, UpdatedAt: time.Now().UTC()}, true, nil
}

type mockProviderStore struct {
	contact domain.ProviderContact
	err     error
}

func (m *mockProviderStore) GetContact(_ context.Context, providerID string) (domain.ProviderContact, error) {
	if m.err != nil {
		return domain.ProviderContact{}, m.err
	}
	c := m.contact
	c.ProviderID = providerID
	return c, nil
}

func testProviderStore() *mockProviderStore {
	return &mockProviderStore{contact: domain.ProviderContact{
		Name:  "Budi Santoso",
		Phone: "081234567890",
		Email: "budi@jasa.co.id",
	}}
}

func TestWalletHandlerGetWallet(t *testing.T) {
	r, jwtSvc := setupRouter(&mockMessageRepo{}, newMockWalletStore(map[string]int64{"u1": 75000}), testProviderStore())
	token, _ := jwtSvc.GenerateAccessToken("u1")

	rec := performRequest(r, http.MethodGet, "/wallet", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	wallet, ok := body["wallet"].(map[string]any)
	if !ok || wallet["balance"] != float64(75000) {
		t.Fatalf("expected balance 75000, got %v", body["wallet"])
	}
	if body["contact_fee"] != float64(10000) {
		t.Fatalf("expected contact fee 10000, got %v", body["contact_fee"])
	}
	options, ok := body["topup_options"].([]any)
	if !ok || len(options) != 5 {
		t.Fatalf("expected 5 topup options, got %v", body["topup_options"])
	}
}

func TestWalletHandlerTopUp(t *testing.T) {
	r, jwtSvc := setupRouter(&mockMessageRepo{}, newMockWalletStore(map[string]int64{"u1": 50000}), testProviderStore())
	token, _ := jwtSvc.GenerateAccessToken("u1")

	rec := performRequest(r, http.MethodPost, "/wallet/topup", token, map[string]int64{"amount": 100000})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	wallet, ok := body["wallet"].(map[string]any)
	if !ok || wallet["balance"] != float64(150000) {
		t.Fatalf("expected balance 150000, got %v", body["wallet"])
	}
}

func TestWalletHandlerTopUp_RejectsBadAmounts(t *testing.T) {
	r, jwtSvc := setupRouter(&mockMessageRepo{}, newMockWalletStore(nil), testProviderStore())
	token, _ := jwtSvc.GenerateAccessToken("u1")

	for _, amount := range []int64{0, -5000} {
		rec := performRequest(r, http.MethodPost, "/wallet/topup", token, map[string]int64{"amount": amount})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("amount %d: expected 400, got %d", amount, rec.Code)
		}
	}
}

func TestWalletHandlerRevealContact_Granted(t *testing.T) {
	r, jwtSvc := setupRouter(&mockMessageRepo{}, newMockWalletStore(map[string]int64{"u1": 10000}), testProviderStore())
	token, _ := jwtSvc.GenerateAccessToken("u1")

	rec := performRequest(r, http.MethodPost, "/providers/prov-1/contact", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	decision, ok := body["decision"].(map[string]any)
	if !ok || decision["status"] != string(domain.RevealGranted) {
		t.Fatalf("expected granted decision, got %v", body)
	}
	if decision["new_balance"] != float64(0) {
		t.Fatalf("expected new balance 0, got %v", decision["new_balance"])
	}
	contact, ok := decision["contact"].(map[string]any)
	if !ok || contact["phone"] != "081234567890" {
		t.Fatalf("expected revealed contact, got %v", decision["contact"])
	}
}

func TestWalletHandlerRevealContact_InsufficientFunds(t *testing.T) {
	r, jwtSvc := setupRouter(&mockMessageRepo{}, newMockWalletStore(map[string]int64{"u1": 5000}), testProviderStore())
	token, _ := jwtSvc.GenerateAccessToken("u1")

	rec := performRequest(r, http.MethodPost, "/providers/prov-1/contact", token, nil)
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	decision, ok := body["decision"].(map[string]any)
	if !ok || decision["status"] != string(domain.RevealDeniedInsufficientFunds) {
		t.Fatalf("expected denial, got %v", body)
	}
	options, ok := decision["topup_options"].([]any)
	if !ok || len(options) != 5 {
		t.Fatalf("expected topup call-to-action, got %v", decision)
	}
	if _, hasContact := decision["contact"]; hasContact {
		t.Fatalf("expected no contact on denial, got %v", decision)
	}
}

func TestWalletHandlerRequiresAuth(t *testing.T) {
	r, _ := setupRouter(&mockMessageRepo{}, newMockWalletStore(nil), testProviderStore())

	rec := performRequest(r, http.MethodGet, "/wallet", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for /wallet, got %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPost, "/providers/prov-1/contact", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for reveal, got %d", rec.Code)
	}
}
