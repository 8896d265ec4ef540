package clients

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/kvstore"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupClientsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.KVEntry{}))

	clock := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	seq := 0
	svc := &Service{
		Store: &kvstore.SQLStore{DB: db},
		Now: func() time.Time {
			clock = clock.Add(time.Minute)
			return clock
		},
		NewID: func() string {
			seq++
			return fmt.Sprintf("client-%d", seq)
		},
	}
	return svc, db
}

func sampleInput() domain.ClientInput {
	return domain.ClientInput{
		Name: "Pune Municipal Corporation",
		Contact: domain.ContactInfo{
			Name:           "A. Kulkarni",
			Designation:    "Executive Engineer",
			Email:          "ee.roads@pmc.gov.in",
			BillingAddress: "Shivajinagar, Pune 411005",
		},
	}
}

func TestCreate_GetByID_RoundTrip(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	in := sampleInput()

	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "client-1", created.ID)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, ok := s.GetByID(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Contact, got.Contact)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, created.UpdatedAt.Equal(got.UpdatedAt))
}

func TestCreate_WithDefaultClockAndID(t *testing.T) {
	s, _ := setupClientsTest(t)
	s.Now, s.NewID = nil, nil
	c, err := s.Create(context.Background(), sampleInput())
	require.NoError(t, err)
	assert.Len(t, c.ID, 36)
	assert.WithinDuration(t, time.Now(), c.CreatedAt, time.Minute)
}

func TestCreate_DuplicateNamesAllowed(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	_, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)
	_, err = s.Create(ctx, sampleInput())
	require.NoError(t, err)
	assert.Len(t, s.GetAll(ctx), 2)
}

func TestGetByName_CaseInsensitive(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	_, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)

	c, ok := s.GetByName(ctx, "  pune MUNICIPAL corporation")
	require.True(t, ok)
	assert.Equal(t, "client-1", c.ID)

	_, ok = s.GetByName(ctx, "Pune Municipal")
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	created, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)

	mobile := "9822012345"
	name := "PMC Roads Dept"
	updated, ok, err := s.Update(ctx, created.ID, domain.ClientPatch{
		Name:    &name,
		Contact: &domain.ContactPatch{Mobile: &mobile},
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "PMC Roads Dept", updated.Name)
	assert.Equal(t, "9822012345", updated.Contact.Mobile)
	assert.Equal(t, "A. Kulkarni", updated.Contact.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	_, ok, err = s.Update(ctx, "missing", domain.ClientPatch{Name: &name})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	created, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)

	removed, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	_, ok := s.GetByID(ctx, created.ID)
	assert.False(t, ok)

	removed, err = s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestSearch(t *testing.T) {
	s, _ := setupClientsTest(t)
	ctx := context.Background()
	_, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)
	_, err = s.Create(ctx, domain.ClientInput{
		Name:    "Nagpur Metro Rail",
		Contact: domain.ContactInfo{Name: "S. Deshmukh", Email: "works@mahametro.org"},
	})
	require.NoError(t, err)

	assert.Len(t, s.Search(ctx, ""), 2)
	assert.Len(t, s.Search(ctx, "METRO"), 1)
	assert.Len(t, s.Search(ctx, "kulkarni"), 1)
	assert.Len(t, s.Search(ctx, "pmc.gov"), 1)
	assert.Len(t, s.Search(ctx, "411005"), 1)
	assert.Empty(t, s.Search(ctx, "mumbai"))
}

func TestCorruptClientList_FailsOpen(t *testing.T) {
	s, db := setupClientsTest(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&domain.KVEntry{Key: kvstore.KeyClients, Value: []byte(`{"oops":`)}).Error)

	assert.Empty(t, s.GetAll(ctx))
	_, err := s.Create(ctx, sampleInput())
	require.NoError(t, err)
	assert.Len(t, s.GetAll(ctx), 1)
}
