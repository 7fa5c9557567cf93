package partner_test

import (
	"context"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	"github.com/Triyambak-CA/client-dashboard/internal/partner"
	partnererrors "github.com/Triyambak-CA/client-dashboard/internal/partner/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePartnerRepo struct {
	partners map[uuid.UUID]*partner.Partner
	clients  map[uuid.UUID]*client.Client
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{
		partners: make(map[uuid.UUID]*partner.Partner),
		clients:  make(map[uuid.UUID]*client.Client),
	}
}

func (f *fakePartnerRepo) addClient(c client.Client) uuid.UUID {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.clients[c.ID] = &c
	return c.ID
}

func (f *fakePartnerRepo) withClients(p partner.Partner) *partner.Partner {
	p.FirmLLP = f.clients[p.FirmLLPClientID]
	p.Individual = f.clients[p.IndividualClientID]
	return &p
}

func (f *fakePartnerRepo) Transaction(ctx context.Context, fn func(partner.Repository) error) error {
	return fn(f)
}

func (f *fakePartnerRepo) Create(_ context.Context, p *partner.Partner) error {
	stored := *p
	f.partners[p.ID] = &stored
	return nil
}

func (f *fakePartnerRepo) FindAll(_ context.Context, filter partner.ListFilter) ([]partner.Partner, error) {
	var out []partner.Partner
	for _, p := range f.partners {
		if filter.FirmLLPClientID != nil && p.FirmLLPClientID != *filter.FirmLLPClientID {
			continue
		}
		if filter.IndividualClientID != nil && p.IndividualClientID != *filter.IndividualClientID {
			continue
		}
		out = append(out, *f.withClients(*p))
	}
	return out, nil
}

func (f *fakePartnerRepo) FindByID(_ context.Context, id uuid.UUID) (*partner.Partner, error) {
	p, ok := f.partners[id]
	if !ok {
		return nil, nil
	}
	return f.withClients(*p), nil
}

func (f *fakePartnerRepo) Update(_ context.Context, p *partner.Partner) error {
	stored := *p
	stored.FirmLLP = nil
	stored.Individual = nil
	f.partners[p.ID] = &stored
	return nil
}

func (f *fakePartnerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.partners, id)
	return nil
}

func f64ptr(v float64) *float64 { return &v }

func TestPartnerService_Create(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := partner.NewService(repo)
	ctx := context.Background()

	firmID := repo.addClient(client.Client{LegalName: "Sharma & Associates LLP", PAN: "AAEFS1234K"})
	individualID := repo.addClient(client.Client{LegalName: "Rohan Sharma", PAN: "AAAPS0001R"})

	res, err := svc.Create(ctx, partner.CreatePartnerRequest{
		FirmLLPClientID:    firmID,
		IndividualClientID: individualID,
		Role:               "Designated Partner",
		ProfitSharingRatio: f64ptr(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "Designated Partner", res.Role)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.FirmName)
	assert.Equal(t, "Sharma & Associates LLP", *res.FirmName)
	require.NotNil(t, res.IndividualName)
	assert.Equal(t, "Rohan Sharma", *res.IndividualName)
	require.NotNil(t, res.ProfitSharingRatio)
	assert.Equal(t, 40.0, *res.ProfitSharingRatio)
}

func TestPartnerService_Update(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := partner.NewService(repo)
	ctx := context.Background()

	firmID := repo.addClient(client.Client{LegalName: "Sharma & Associates LLP", PAN: "AAEFS1234K"})
	individualID := repo.addClient(client.Client{LegalName: "Rohan Sharma", PAN: "AAAPS0001R"})

	created, err := svc.Create(ctx, partner.CreatePartnerRequest{
		FirmLLPClientID:    firmID,
		IndividualClientID: individualID,
		Role:               "Partner",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	t.Run("patches only provided fields", func(t *testing.T) {
		role := "Managing Partner"
		updated, err := svc.Update(ctx, id, partner.UpdatePartnerRequest{
			Role:                &role,
			CapitalContribution: f64ptr(500000),
		})
		require.NoError(t, err)
		assert.Equal(t, "Managing Partner", updated.Role)
		require.NotNil(t, updated.CapitalContribution)
		assert.Equal(t, 500000.0, *updated.CapitalContribution)
		assert.True(t, updated.IsActive)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), partner.UpdatePartnerRequest{})
		assert.ErrorIs(t, err, partnererrors.ErrPartnerNotFound)
	})
}

func TestPartnerService_GetAll(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := partner.NewService(repo)
	ctx := context.Background()

	firmA := repo.addClient(client.Client{LegalName: "Firm A LLP", PAN: "AAEFA0001A"})
	firmB := repo.addClient(client.Client{LegalName: "Firm B LLP", PAN: "AAEFB0002B"})
	individualID := repo.addClient(client.Client{LegalName: "Rohan Sharma", PAN: "AAAPS0001R"})

	for _, firm := range []uuid.UUID{firmA, firmB} {
		_, err := svc.Create(ctx, partner.CreatePartnerRequest{
			FirmLLPClientID:    firm,
			IndividualClientID: individualID,
			Role:               "Partner",
		})
		require.NoError(t, err)
	}

	t.Run("filter by firm", func(t *testing.T) {
		res, err := svc.GetAll(ctx, partner.ListFilter{FirmLLPClientID: &firmA})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, firmA.String(), res[0].FirmLLPClientID)
	})

	t.Run("filter by individual", func(t *testing.T) {
		res, err := svc.GetAll(ctx, partner.ListFilter{IndividualClientID: &individualID})
		require.NoError(t, err)
		assert.Len(t, res, 2)
	})
}

func TestPartnerService_Delete(t *testing.T) {
	repo := newFakePartnerRepo()
	svc := partner.NewService(repo)
	ctx := context.Background()

	firmID := repo.addClient(client.Client{LegalName: "Firm A LLP", PAN: "AAEFA0001A"})
	individualID := repo.addClient(client.Client{LegalName: "Rohan Sharma", PAN: "AAAPS0001R"})

	created, err := svc.Create(ctx, partner.CreatePartnerRequest{
		FirmLLPClientID:    firmID,
		IndividualClientID: individualID,
		Role:               "Partner",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, partnererrors.ErrPartnerNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, id), partnererrors.ErrPartnerNotFound)
}
