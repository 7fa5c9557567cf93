package shareholder_test

import (
	"context"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/shareholder"
	shareholdererrors "github.com/Triyambak-CA/client-dashboard/internal/shareholder/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShareholderRepo struct {
	shareholders map[uuid.UUID]*shareholder.Shareholder
	clients      map[uuid.UUID]*client.Client
}

func newFakeShareholderRepo() *fakeShareholderRepo {
	return &fakeShareholderRepo{
		shareholders: make(map[uuid.UUID]*shareholder.Shareholder),
		clients:      make(map[uuid.UUID]*client.Client),
	}
}

func (r *fakeShareholderRepo) addClient(c client.Client) *client.Client {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = &c
	return &c
}

func (r *fakeShareholderRepo) Transaction(_ context.Context, fn func(shareholder.Repository) error) error {
	return fn(r)
}

func (r *fakeShareholderRepo) Create(_ context.Context, sh *shareholder.Shareholder) error {
	cp := *sh
	r.shareholders[sh.ID] = &cp
	return nil
}

func (r *fakeShareholderRepo) FindAll(_ context.Context, companyClientID *uuid.UUID) ([]shareholder.Shareholder, error) {
	var out []shareholder.Shareholder
	for _, sh := range r.shareholders {
		if companyClientID != nil && sh.CompanyClientID != *companyClientID {
			continue
		}
		out = append(out, r.withHolders(*sh))
	}
	return out, nil
}

func (r *fakeShareholderRepo) FindByID(_ context.Context, id uuid.UUID) (*shareholder.Shareholder, error) {
	sh, ok := r.shareholders[id]
	if !ok {
		return nil, nil
	}
	cp := r.withHolders(*sh)
	return &cp, nil
}

func (r *fakeShareholderRepo) Update(_ context.Context, sh *shareholder.Shareholder) error {
	cp := *sh
	cp.Individual, cp.HoldingEntity = nil, nil
	r.shareholders[sh.ID] = &cp
	return nil
}

func (r *fakeShareholderRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.shareholders, id)
	return nil
}

func (r *fakeShareholderRepo) withHolders(sh shareholder.Shareholder) shareholder.Shareholder {
	if sh.IndividualClientID != nil {
		if c, ok := r.clients[*sh.IndividualClientID]; ok {
			cp := *c
			sh.Individual = &cp
		}
	}
	if sh.HoldingEntityClientID != nil {
		if c, ok := r.clients[*sh.HoldingEntityClientID]; ok {
			cp := *c
			sh.HoldingEntity = &cp
		}
	}
	return sh
}

func TestShareholderService_Create(t *testing.T) {
	repo := newFakeShareholderRepo()
	company := repo.addClient(client.Client{PAN: "AAACC0001A", Constitution: "Company", DisplayName: "Comp", LegalName: "Comp Pvt Ltd"})
	person := repo.addClient(client.Client{PAN: "AAAPH0002B", Constitution: "Individual", DisplayName: "Hari", LegalName: "Hari Patel"})
	trust := repo.addClient(client.Client{PAN: "AAATT0003C", Constitution: "Trust", DisplayName: "Trust", LegalName: "Family Trust"})

	svc := shareholder.NewService(repo)
	ctx := context.Background()

	t.Run("individual holder resolves name and PAN from the individual", func(t *testing.T) {
		resp, err := svc.Create(ctx, shareholder.CreateShareholderRequest{
			CompanyClientID:    company.ID,
			HolderType:         "Individual",
			IndividualClientID: &person.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Hari Patel", *resp.HolderName)
		assert.Equal(t, "AAAPH0002B", *resp.HolderPAN)
	})

	t.Run("entity holder resolves from the holding entity", func(t *testing.T) {
		resp, err := svc.Create(ctx, shareholder.CreateShareholderRequest{
			CompanyClientID:       company.ID,
			HolderType:            "Trust",
			HoldingEntityClientID: &trust.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, "Family Trust", *resp.HolderName)
	})

	t.Run("the same holder may appear twice", func(t *testing.T) {
		equity := "Equity"
		preference := "Preference"
		_, err := svc.Create(ctx, shareholder.CreateShareholderRequest{
			CompanyClientID:    company.ID,
			HolderType:         "Individual",
			IndividualClientID: &person.ID,
			ShareType:          &equity,
		})
		require.NoError(t, err)
		_, err = svc.Create(ctx, shareholder.CreateShareholderRequest{
			CompanyClientID:    company.ID,
			HolderType:         "Individual",
			IndividualClientID: &person.ID,
			ShareType:          &preference,
		})
		assert.NoError(t, err)
	})
}

func TestShareholderService_Update(t *testing.T) {
	repo := newFakeShareholderRepo()
	company := repo.addClient(client.Client{PAN: "AAACC0004D", Constitution: "Company", DisplayName: "Comp", LegalName: "Comp Pvt Ltd"})
	person := repo.addClient(client.Client{PAN: "AAAPH0005E", Constitution: "Individual", DisplayName: "Hari", LegalName: "Hari Patel"})

	svc := shareholder.NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, shareholder.CreateShareholderRequest{
		CompanyClientID:    company.ID,
		HolderType:         "Individual",
		IndividualClientID: &person.ID,
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(created.ID)

	t.Run("patches numeric fields", func(t *testing.T) {
		pct := 25.5
		shares := 1000
		resp, err := svc.Update(ctx, id, shareholder.UpdateShareholderRequest{
			Percentage:     &pct,
			NumberOfShares: &shares,
		})
		require.NoError(t, err)
		assert.Equal(t, 25.5, *resp.Percentage)
		assert.Equal(t, 1000, *resp.NumberOfShares)
		assert.Equal(t, "Hari Patel", *resp.HolderName)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), shareholder.UpdateShareholderRequest{})
		assert.ErrorIs(t, err, shareholdererrors.ErrShareholderNotFound)
	})
}

func TestShareholderService_Delete(t *testing.T) {
	repo := newFakeShareholderRepo()
	company := repo.addClient(client.Client{PAN: "AAACC0006F", Constitution: "Company", DisplayName: "Comp", LegalName: "Comp Pvt Ltd"})
	person := repo.addClient(client.Client{PAN: "AAAPH0007G", Constitution: "Individual", DisplayName: "Hari", LegalName: "Hari Patel"})

	svc := shareholder.NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, shareholder.CreateShareholderRequest{
		CompanyClientID:    company.ID,
		HolderType:         "Individual",
		IndividualClientID: &person.ID,
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(created.ID)

	require.NoError(t, svc.Delete(ctx, id))

	err = svc.Delete(ctx, id)
	assert.ErrorIs(t, err, shareholdererrors.ErrShareholderNotFound)
}
