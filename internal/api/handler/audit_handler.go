package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/backoffice/admin-api/internal/core/domain"
	"github.com/backoffice/admin-api/internal/core/ports"
)

// AuditHandler exposes the login audit trail.
type AuditHandler struct {
	repo ports.AuditLoginRepository
}

func NewAuditHandler(repo ports.AuditLoginRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

type auditLoginResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	IP        string    `json:"ip,omitempty"`
	Geo       string    `json:"geo,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Language  string    `json:"language,omitempty"`
	Auth      bool      `json:"auth"`
	CreatedAt time.Time `json:"created_at"`
}

func toAuditLoginResponse(rec *domain.AuditLogin) auditLoginResponse {
	return auditLoginResponse{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Username:  rec.Username,
		IP:        rec.Metadata.IP,
		Geo:       rec.Metadata.Geo,
		UserAgent: rec.Metadata.UserAgent,
		Language:  rec.Metadata.Language,
		Auth:      rec.Auth,
		CreatedAt: rec.CreatedAt,
	}
}

// List handles GET /v1/audit/logins.
//
// @Summary      List login audit records, newest first
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (max 100)"
// @Param        offset  query     int  false  "Rows to skip"
// @Success      200  {object}  pageResponse
// @Router       /v1/audit/logins [get]
func (h *AuditHandler) List(c echo.Context) error {
	records, total, err := h.repo.List(c.Request().Context(), listFilter(c))
	if err != nil {
		return err
	}

	items := make([]auditLoginResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, toAuditLoginResponse(rec))
	}
	return c.JSON(http.StatusOK, pageResponse{Items: items, TotalCount: total})
}
