package client_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Triyambak-CA/client-dashboard/internal/client"
	clienterrors "github.com/Triyambak-CA/client-dashboard/internal/client/errors"
	"github.com/Triyambak-CA/client-dashboard/internal/credential"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients map[uuid.UUID]*client.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[uuid.UUID]*client.Client)}
}

func (r *fakeClientRepo) Transaction(_ context.Context, fn func(client.Repository) error) error {
	return fn(r)
}

func (r *fakeClientRepo) Create(_ context.Context, c *client.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) FindAll(_ context.Context, filter client.ListFilter) ([]client.Client, error) {
	var out []client.Client
	for _, c := range r.clients {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(c.DisplayName), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(c.LegalName), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(c.PAN), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Constitution != "" && c.Constitution != filter.Constitution {
			continue
		}
		if filter.IsActive != nil && c.IsActive != *filter.IsActive {
			continue
		}
		if filter.IsDirect != nil && c.IsDirectClient != *filter.IsDirect {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClientRepo) FindByID(_ context.Context, id uuid.UUID) (*client.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) FindByPAN(_ context.Context, pan string) (*client.Client, error) {
	for _, c := range r.clients {
		if c.PAN == pan {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) Update(_ context.Context, c *client.Client) error {
	cp := *c
	r.clients[c.ID] = &cp
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

func TestClientService_Create(t *testing.T) {
	repo := newFakeClientRepo()
	svc := client.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	t.Run("persists ciphertext but responds with plaintext", func(t *testing.T) {
		resp, err := svc.Create(ctx, client.CreateClientRequest{
			PAN:              "AAAPL1234C",
			Constitution:     "Individual",
			DisplayName:      "Ravi",
			LegalName:        "Ravi Kumar",
			ITPortalPassword: strptr("portal-secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, "portal-secret", *resp.ITPortalPassword)
		assert.True(t, resp.IsActive)
		assert.True(t, resp.IsDirectClient)

		id, err := uuid.Parse(resp.ID)
		require.NoError(t, err)
		stored := repo.clients[id]
		require.NotNil(t, stored.ITPortalPassword)
		assert.NotEqual(t, "portal-secret", *stored.ITPortalPassword)
	})

	t.Run("duplicate PAN conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, client.CreateClientRequest{
			PAN:          "AAAPL1234C",
			Constitution: "Company",
			DisplayName:  "Other",
			LegalName:    "Other Pvt Ltd",
		})
		assert.ErrorIs(t, err, clienterrors.ErrPANExists)
	})
}

func TestClientService_GetByID(t *testing.T) {
	repo := newFakeClientRepo()
	svc := client.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, client.CreateClientRequest{
		PAN:          "AAACI9876B",
		Constitution: "Company",
		DisplayName:  "Indus",
		LegalName:    "Indus Traders Pvt Ltd",
	})
	require.NoError(t, err)

	t.Run("round-trips the record", func(t *testing.T) {
		id, _ := uuid.Parse(created.ID)
		resp, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Indus Traders Pvt Ltd", resp.LegalName)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		_, err := svc.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
	})
}

func TestClientService_Update(t *testing.T) {
	repo := newFakeClientRepo()
	svc := client.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	first, err := svc.Create(ctx, client.CreateClientRequest{
		PAN:          "AAAPF0001A",
		Constitution: "Individual",
		DisplayName:  "First",
		LegalName:    "First Person",
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, client.CreateClientRequest{
		PAN:          "AAAPS0002B",
		Constitution: "Individual",
		DisplayName:  "Second",
		LegalName:    "Second Person",
	})
	require.NoError(t, err)

	firstID, _ := uuid.Parse(first.ID)
	secondID, _ := uuid.Parse(second.ID)

	t.Run("applies only provided fields", func(t *testing.T) {
		resp, err := svc.Update(ctx, firstID, client.UpdateClientRequest{
			DisplayName: strptr("First Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "First Renamed", resp.DisplayName)
		assert.Equal(t, "First Person", resp.LegalName)
	})

	t.Run("new password is re-encrypted at rest", func(t *testing.T) {
		resp, err := svc.Update(ctx, firstID, client.UpdateClientRequest{
			TracesPasswordDeductor: strptr("traces-secret"),
		})
		require.NoError(t, err)
		assert.Equal(t, "traces-secret", *resp.TracesPasswordDeductor)

		stored := repo.clients[firstID]
		assert.NotEqual(t, "traces-secret", *stored.TracesPasswordDeductor)
	})

	t.Run("changing PAN to another client's conflicts", func(t *testing.T) {
		_, err := svc.Update(ctx, secondID, client.UpdateClientRequest{
			PAN: strptr("AAAPF0001A"),
		})
		assert.ErrorIs(t, err, clienterrors.ErrPANExists)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		_, err := svc.Update(ctx, uuid.New(), client.UpdateClientRequest{})
		assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
	})
}

func TestClientService_Deactivate(t *testing.T) {
	repo := newFakeClientRepo()
	svc := client.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, client.CreateClientRequest{
		PAN:          "AAAPD0003C",
		Constitution: "HUF",
		DisplayName:  "Family",
		LegalName:    "Family HUF",
	})
	require.NoError(t, err)
	id, _ := uuid.Parse(created.ID)

	t.Run("soft-deletes by clearing is_active", func(t *testing.T) {
		require.NoError(t, svc.Deactivate(ctx, id))
		assert.False(t, repo.clients[id].IsActive)

		// the record itself survives
		resp, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("unknown id is a not found error", func(t *testing.T) {
		err := svc.Deactivate(ctx, uuid.New())
		assert.ErrorIs(t, err, clienterrors.ErrClientNotFound)
	})
}

func TestClientService_GetAll(t *testing.T) {
	repo := newFakeClientRepo()
	svc := client.NewService(repo, newTestCodec(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, client.CreateClientRequest{
		PAN: "AAAPA0004D", Constitution: "Individual", DisplayName: "Asha", LegalName: "Asha Mehta",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, client.CreateClientRequest{
		PAN: "AAACB0005E", Constitution: "Company", DisplayName: "Beta", LegalName: "Beta Industries",
	})
	require.NoError(t, err)

	t.Run("filters by constitution", func(t *testing.T) {
		items, err := svc.GetAll(ctx, client.ListFilter{Constitution: "Company"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Beta", items[0].DisplayName)
	})

	t.Run("search matches legal name", func(t *testing.T) {
		items, err := svc.GetAll(ctx, client.ListFilter{Search: "mehta"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Asha", items[0].DisplayName)
	})
}
