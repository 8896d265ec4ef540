package clients

import (
	"strings"

	clientsvc "sitetrack-backend/internal/application/clients"
	projsvc "sitetrack-backend/internal/application/projects"
	"sitetrack-backend/internal/domain"
	"sitetrack-backend/internal/pkg/response"
	"sitetrack-backend/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service  *clientsvc.Service
	Projects *projsvc.Service
}

// GET /api/v1/clients?q=
func (h *Handlers) List(c *fiber.Ctx) error {
	q := c.Query("q")
	return response.List(c, "Clients fetched successfully", h.Service.Search(c.Context(), q), response.Meta{"q": q})
}

// GET /api/v1/clients/merged
func (h *Handlers) Merged(c *fiber.Ctx) error {
	merged := clientsvc.Merge(h.Service.GetAll(c.Context()), h.Projects.GetAll(c.Context()))
	return response.List(c, "Clients fetched successfully", merged, nil)
}

// GET /api/v1/clients/:id
func (h *Handlers) Get(c *fiber.Ctx) error {
	client, ok := h.Service.GetByID(c.Context(), c.Params("id"))
	if !ok {
		return response.NotFound(c, clientsvc.ErrClientNotFound.Error())
	}
	return response.Success(c, "Client fetched successfully", client, nil)
}

// POST /api/v1/clients: 400 on blank name or bad contact, 409 when the name is taken.
func (h *Handlers) Create(c *fiber.Ctx) error {
	var in domain.ClientInput
	if err := c.BodyParser(&in); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return response.BadRequest(c, "Missing required field: name")
	}
	if problems := validation.ContactProblems(in.Contact.Email, in.Contact.CCEmail, in.Contact.Mobile); len(problems) > 0 {
		return response.Error(c, "Invalid contact details", fiber.StatusBadRequest, problems)
	}
	if _, exists := h.Service.GetByName(c.Context(), in.Name); exists {
		return response.Error(c, "Client with this name already exists", fiber.StatusConflict, nil)
	}
	client, err := h.Service.Create(c.Context(), in)
	if err != nil {
		log.Error().Err(err).Str("name", in.Name).Msg("clients: create failed")
		return response.Internal(c)
	}
	return response.SuccessCreated(c, "Client created successfully", client, nil)
}

// PATCH /api/v1/clients/:id
func (h *Handlers) Update(c *fiber.Ctx) error {
	var patch domain.ClientPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	id := c.Params("id")
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return response.BadRequest(c, "Client name cannot be blank")
		}
		if other, exists := h.Service.GetByName(c.Context(), name); exists && other.ID != id {
			return response.Error(c, "Client with this name already exists", fiber.StatusConflict, nil)
		}
		patch.Name = &name
	}
	if patch.Contact != nil {
		pc := patch.Contact
		if problems := validation.ContactProblems(deref(pc.Email), deref(pc.CCEmail), deref(pc.Mobile)); len(problems) > 0 {
			return response.Error(c, "Invalid contact details", fiber.StatusBadRequest, problems)
		}
	}
	client, found, err := h.Service.Update(c.Context(), id, patch)
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("clients: update failed")
		return response.Internal(c)
	}
	if !found {
		return response.NotFound(c, clientsvc.ErrClientNotFound.Error())
	}
	return response.Success(c, "Client updated successfully", client, nil)
}

// DELETE /api/v1/clients/:id
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	deleted, err := h.Service.Delete(c.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("clients: delete failed")
		return response.Internal(c)
	}
	if !deleted {
		return response.NotFound(c, clientsvc.ErrClientNotFound.Error())
	}
	return response.Success(c, "Client deleted successfully", fiber.Map{"id": id}, nil)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
