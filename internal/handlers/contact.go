// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// PATCH /api/contacts/:id/read
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	contact, err := h.contactService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, h.contactService.Name())
		return
	}
	utils.SuccessResponse(c, contact)
}
