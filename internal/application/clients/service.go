package clients

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/infrastructure/kvstore"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrClientNotFound = errors.New("Client not found")

// Service is the CRUD store for explicitly managed clients. The whole list is
// read and rewritten on every mutation. Duplicate names are not rejected;
// callers check GetByName first.
type Service struct {
	Store kvstore.Store
	// Now and NewID default to time.Now and uuid.NewString.
	Now   func() time.Time
	NewID func() string

	mu sync.Mutex
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC().Round(0)
	}
	return time.Now().UTC().Round(0)
}

func (s *Service) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *Service) load(ctx context.Context) []domain.Client {
	var list []domain.Client
	kvstore.LoadJSON(ctx, s.Store, kvstore.KeyClients, &list)
	if list == nil {
		list = []domain.Client{}
	}
	return list
}

func (s *Service) save(ctx context.Context, list []domain.Client) error {
	return kvstore.SaveJSON(ctx, s.Store, kvstore.KeyClients, list)
}

func (s *Service) GetAll(ctx context.Context) []domain.Client {
	return s.load(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Client, bool) {
	for _, c := range s.load(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Client{}, false
}

// GetByName matches the whole name case-insensitively, ignoring surrounding spaces.
func (s *Service) GetByName(ctx context.Context, name string) (domain.Client, bool) {
	name = strings.TrimSpace(name)
	for _, c := range s.load(ctx) {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c, true
		}
	}
	return domain.Client{}, false
}

// Create always succeeds apart from store write failures.
func (s *Service) Create(ctx context.Context, in domain.ClientInput) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	c := domain.Client{
		ID:        s.newID(),
		Name:      in.Name,
		Logo:      in.Logo,
		Contact:   in.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	list := append(s.load(ctx), c)
	if err := s.save(ctx, list); err != nil {
		return domain.Client{}, err
	}
	log.Info().Str("client_id", c.ID).Str("name", c.Name).Msg("clients: created")
	return c, nil
}

// Update merges the non-nil fields of patch and bumps UpdatedAt.
// It returns false when id is unknown.
func (s *Service) Update(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.load(ctx)
	for i := range list {
		if list[i].ID != id {
			continue
		}
		c := &list[i]
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Logo != nil {
			c.Logo = *patch.Logo
		}
		if patch.Contact != nil {
			patch.Contact.Apply(&c.Contact)
		}
		c.UpdatedAt = s.now()
		if err := s.save(ctx, list); err != nil {
			return domain.Client{}, false, err
		}
		return *c, true, nil
	}
	return domain.Client{}, false, nil
}

// Delete removes the record and reports whether one was removed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.load(ctx)
	kept := make([]domain.Client, 0, len(list))
	for _, c := range list {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	if err := s.save(ctx, kept); err != nil {
		return false, err
	}
	log.Info().Str("client_id", id).Msg("clients: deleted")
	return true, nil
}

// Search matches q as a case-insensitive substring of the name, contact name,
// contact email or billing address. A blank q returns every client.
func (s *Service) Search(ctx context.Context, q string) []domain.Client {
	list := s.load(ctx)
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}
	out := make([]domain.Client, 0)
	for _, c := range list {
		for _, f := range []string{c.Name, c.Contact.Name, c.Contact.Email, c.Contact.BillingAddress} {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
