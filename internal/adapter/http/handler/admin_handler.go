package handler

import (
	"carbon-credit-exchange/internal/adapter/http/dto"
	"carbon-credit-exchange/internal/core/domain"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"
	"carbon-credit-exchange/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles marketplace administration endpoints.
type AdminHandler struct {
	tradingSvc ports.TradingService
	authz      ports.AuthorizationPolicy
	roleRepo   ports.RoleRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(tradingSvc ports.TradingService, authz ports.AuthorizationPolicy, roleRepo ports.RoleRepository) *AdminHandler {
	return &AdminHandler{
		tradingSvc: tradingSvc,
		authz:      authz,
		roleRepo:   roleRepo,
	}
}

// UpdateFee handles PUT /api/v1/admin/fee.
func (h *AdminHandler) UpdateFee(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.UpdateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.tradingSvc.UpdatePlatformFee(c.Request.Context(), caller, req.FeeBps); err != nil {
		response.Error(c, err)
		return
	}

	settings, err := h.tradingSvc.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettingsResponse{FeeBps: settings.FeeBps, Paused: settings.Paused})
}

// TogglePause handles POST /api/v1/admin/pause.
func (h *AdminHandler) TogglePause(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	paused, err := h.tradingSvc.TogglePause(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PauseResponse{Paused: paused})
}

// GrantRole handles POST /api/v1/admin/roles.
func (h *AdminHandler) GrantRole(c *gin.Context) {
	h.changeRole(c, true)
}

// RevokeRole handles DELETE /api/v1/admin/roles.
func (h *AdminHandler) RevokeRole(c *gin.Context) {
	h.changeRole(c, false)
}

func (h *AdminHandler) changeRole(c *gin.Context, grant bool) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	if err := h.authz.Require(c.Request.Context(), caller, domain.RoleMarketplaceAdmin); err != nil {
		response.Error(c, err)
		return
	}

	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	account, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	if grant {
		err = h.roleRepo.Grant(c.Request.Context(), account, domain.Role(req.Role))
	} else {
		err = h.roleRepo.Revoke(c.Request.Context(), account, domain.Role(req.Role))
	}
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	roles, err := h.roleRepo.RolesOf(c.Request.Context(), account)
	if err != nil {
		response.Error(c, apperror.ErrDatabaseError(err))
		return
	}

	list := make([]string, 0, len(roles))
	for _, r := range roles {
		list = append(list, string(r))
	}
	response.OK(c, dto.RoleListResponse{AccountID: account.String(), Roles: list})
}
