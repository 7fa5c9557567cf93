package bankaccount_test

import (
	"context"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/bankaccount"
	bankaccounterrors "github.com/Triyambak-CA/client-dashboard/internal/bankaccount/errors"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBankAccountRepo struct {
	accounts map[uuid.UUID]*bankaccount.BankAccount
}

func newFakeBankAccountRepo() *fakeBankAccountRepo {
	return &fakeBankAccountRepo{accounts: make(map[uuid.UUID]*bankaccount.BankAccount)}
}

func (r *fakeBankAccountRepo) Transaction(_ context.Context, fn func(bankaccount.Repository) error) error {
	return fn(r)
}

func (r *fakeBankAccountRepo) Create(_ context.Context, b *bankaccount.BankAccount) error {
	cp := *b
	r.accounts[b.ID] = &cp
	return nil
}

func (r *fakeBankAccountRepo) FindAll(_ context.Context, clientID *uuid.UUID) ([]bankaccount.BankAccount, error) {
	var out []bankaccount.BankAccount
	for _, b := range r.accounts {
		if clientID != nil && b.ClientID != *clientID {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBankAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*bankaccount.BankAccount, error) {
	b, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBankAccountRepo) Update(_ context.Context, b *bankaccount.BankAccount) error {
	cp := *b
	r.accounts[b.ID] = &cp
	return nil
}

func (r *fakeBankAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.accounts, id)
	return nil
}

func newTestCodec(t *testing.T) *credential.Codec {
	t.Helper()
	key, err := credential.GenerateKey()
	require.NoError(t, err)
	codec, err := credential.NewCodec(key)
	require.NoError(t, err)
	return codec
}

func strptr(s string) *string { return &s }

func TestBankAccountService_Create(t *testing.T) {
	repo := newFakeBankAccountRepo()
	svc := bankaccount.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	t.Run("net banking password is encrypted at rest", func(t *testing.T) {
		resp, err := svc.Create(ctx, bankaccount.CreateBankAccountRequest{
			ClientID:           uuid.New(),
			BankName:           "HDFC Bank",
			AccountNumber:      "50100123456789",
			IFSCCode:           "HDFC0000123",
			NetBankingPassword: strptr("net-secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, "net-secret", *resp.NetBankingPassword)
		assert.False(t, resp.IsPrimary)

		id, err := uuid.Parse(resp.ID)
		require.NoError(t, err)
		stored := repo.accounts[id]
		assert.NotEqual(t, "net-secret", *stored.NetBankingPassword)
	})

	t.Run("account without credentials stays nil", func(t *testing.T) {
		resp, err := svc.Create(ctx, bankaccount.CreateBankAccountRequest{
			ClientID:      uuid.New(),
			BankName:      "SBI",
			AccountNumber: "30100987654321",
			IFSCCode:      "SBIN0000456",
		})
		require.NoError(t, err)
		assert.Nil(t, resp.NetBankingPassword)
	})
}

func TestBankAccountService_Update(t *testing.T) {
	repo := newFakeBankAccountRepo()
	svc := bankaccount.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, bankaccount.CreateBankAccountRequest{
		ClientID:      uuid.New(),
		BankName:      "ICICI Bank",
		AccountNumber: "000401567890",
		IFSCCode:      "ICIC0000004",
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(created.ID)

	t.Run("marks the account primary", func(t *testing.T) {
		primary := true
		resp, err := svc.Update(ctx, id, bankaccount.UpdateBankAccountRequest{IsPrimary: &primary})
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.Equal(t, "ICICI Bank", resp.BankName)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), bankaccount.UpdateBankAccountRequest{})
		assert.ErrorIs(t, err, bankaccounterrors.ErrBankAccountNotFound)
	})
}

func TestBankAccountService_Delete(t *testing.T) {
	repo := newFakeBankAccountRepo()
	svc := bankaccount.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, bankaccount.CreateBankAccountRequest{
		ClientID:      uuid.New(),
		BankName:      "Axis Bank",
		AccountNumber: "911010049001234",
		IFSCCode:      "UTIB0000001",
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(created.ID)

	require.NoError(t, svc.Delete(ctx, id))

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, bankaccounterrors.ErrBankAccountNotFound)
}
