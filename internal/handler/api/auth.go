package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/cookie"
	"room-reservation/internal/usecase/commands"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	cmds    commands.AdminCommands
	audit   queries.AuditQueries
	cookies *cookie.Codec
}

func NewAdminHandler(cmds commands.AdminCommands, audit queries.AuditQueries, cookies *cookie.Codec) *AdminHandler {
	return &AdminHandler{
		cmds:    cmds,
		audit:   audit,
		cookies: cookies,
	}
}

// @Summary Admin access
// @Description Exchange the shared admin password for an access token. The token is also set as an encrypted session cookie.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminAccessRequest true "Admin password"
// @Success 200 {object} resdto.AdminAccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/access [post]
func (h *AdminHandler) Access(c *gin.Context) {
	var req reqdto.AdminAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, err)
		return
	}

	result, err := h.cmds.Access(c.Request.Context(), req.Password)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	if err := h.cookies.SetAccessToken(c, result.Token, result.TTL); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.AdminAccessResponse{
		AccessToken: result.Token,
		ExpiresAt:   result.ExpiresAt,
		Role:        result.Session.Role().String(),
	})
}

// @Summary Admin logout
// @Description Clears the admin session cookie
// @Tags admin
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	h.cookies.Clear(c)
	c.Status(http.StatusNoContent)
}

// @Summary Audit log
// @Description Mutating requests, newest first, with keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.AuditLogListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/log [get]
func (h *AdminHandler) AuditLog(c *gin.Context) {
	cursor, limit := pageParams(c)
	items, next, err := h.audit.List(c.Request.Context(), cursor, limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditLogs(items, next))
}
