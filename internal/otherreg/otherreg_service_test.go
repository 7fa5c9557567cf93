package otherreg_test

import (
	"context"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/credential"
	"github.com/Triyambak-CA/client-dashboard/internal/otherreg"
	otherregerrors "github.com/Triyambak-CA/client-dashboard/internal/otherreg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOtherRegRepo struct {
	regs map[uuid.UUID]*otherreg.Registration
}

func newFakeOtherRegRepo() *fakeOtherRegRepo {
	return &fakeOtherRegRepo{regs: make(map[uuid.UUID]*otherreg.Registration)}
}

func (f *fakeOtherRegRepo) Transaction(ctx context.Context, fn func(otherreg.Repository) error) error {
	return fn(f)
}

func (f *fakeOtherRegRepo) Create(_ context.Context, reg *otherreg.Registration) error {
	stored := *reg
	f.regs[reg.ID] = &stored
	return nil
}

func (f *fakeOtherRegRepo) FindAll(_ context.Context, clientID *uuid.UUID) ([]otherreg.Registration, error) {
	var out []otherreg.Registration
	for _, reg := range f.regs {
		if clientID != nil && reg.ClientID != *clientID {
			continue
		}
		out = append(out, *reg)
	}
	return out, nil
}

func (f *fakeOtherRegRepo) FindByID(_ context.Context, id uuid.UUID) (*otherreg.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, nil
	}
	copied := *reg
	return &copied, nil
}

func (f *fakeOtherRegRepo) Update(_ context.Context, reg *otherreg.Registration) error {
	stored := *reg
	f.regs[reg.ID] = &stored
	return nil
}

func (f *fakeOtherRegRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.regs, id)
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

func TestOtherRegService_Create(t *testing.T) {
	repo := newFakeOtherRegRepo()
	codec := newTestCodec(t)
	svc := otherreg.NewService(repo, codec)
	ctx := context.Background()

	clientID := uuid.New()
	res, err := svc.Create(ctx, otherreg.CreateRegistrationRequest{
		ClientID:           clientID,
		RegistrationType:   "MSME/Udyam",
		RegistrationNumber: "UDYAM-MH-00-1234567",
		PortalUserID:       strptr("udyam-user"),
		PortalPassword:     strptr("udyam-secret"),
	})
	require.NoError(t, err)

	assert.Equal(t, "MSME/Udyam", res.RegistrationType)
	assert.True(t, res.IsActive)
	require.NotNil(t, res.PortalPassword)
	assert.Equal(t, "udyam-secret", *res.PortalPassword)

	stored := repo.regs[uuid.MustParse(res.ID)]
	require.NotNil(t, stored)
	require.NotNil(t, stored.PortalPassword)
	assert.NotEqual(t, "udyam-secret", *stored.PortalPassword)
	require.NotNil(t, codec.Decrypt(stored.PortalPassword))
	assert.Equal(t, "udyam-secret", *codec.Decrypt(stored.PortalPassword))
}

func TestOtherRegService_Update(t *testing.T) {
	repo := newFakeOtherRegRepo()
	codec := newTestCodec(t)
	svc := otherreg.NewService(repo, codec)
	ctx := context.Background()

	created, err := svc.Create(ctx, otherreg.CreateRegistrationRequest{
		ClientID:           uuid.New(),
		RegistrationType:   "FSSAI",
		RegistrationNumber: "10012345678901",
		PortalPassword:     strptr("old-password"),
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	t.Run("patches fields and re-encrypts the password", func(t *testing.T) {
		updated, err := svc.Update(ctx, id, otherreg.UpdateRegistrationRequest{
			IssuingAuthority: strptr("FSSAI Western Region"),
			PortalPassword:   strptr("new-password"),
		})
		require.NoError(t, err)

		require.NotNil(t, updated.IssuingAuthority)
		assert.Equal(t, "FSSAI Western Region", *updated.IssuingAuthority)
		assert.Equal(t, "10012345678901", updated.RegistrationNumber)

		stored := repo.regs[id]
		require.NotNil(t, stored.PortalPassword)
		assert.NotEqual(t, "new-password", *stored.PortalPassword)
		assert.Equal(t, "new-password", *codec.Decrypt(stored.PortalPassword))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), otherreg.UpdateRegistrationRequest{})
		assert.ErrorIs(t, err, otherregerrors.ErrRegistrationNotFound)
	})
}

func TestOtherRegService_GetAll(t *testing.T) {
	repo := newFakeOtherRegRepo()
	svc := otherreg.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	clientA := uuid.New()
	clientB := uuid.New()
	for _, c := range []struct {
		clientID uuid.UUID
		regType  string
		number   string
	}{
		{clientA, "IEC", "0512345678"},
		{clientA, "Professional Tax", "PT-MH-998877"},
		{clientB, "Trade License", "TL-2024-0042"},
	} {
		_, err := svc.Create(ctx, otherreg.CreateRegistrationRequest{
			ClientID:           c.clientID,
			RegistrationType:   c.regType,
			RegistrationNumber: c.number,
		})
		require.NoError(t, err)
	}

	all, err := svc.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	forA, err := svc.GetAll(ctx, &clientA)
	require.NoError(t, err)
	assert.Len(t, forA, 2)
}

func TestOtherRegService_Delete(t *testing.T) {
	repo := newFakeOtherRegRepo()
	svc := otherreg.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, otherreg.CreateRegistrationRequest{
		ClientID:           uuid.New(),
		RegistrationType:   "IEC",
		RegistrationNumber: "0512345678",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(ctx, id))

	_, err = svc.GetByID(ctx, id)
	assert.ErrorIs(t, err, otherregerrors.ErrRegistrationNotFound)
}
