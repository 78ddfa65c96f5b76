package handler

import (
	"strconv"

	"carbon-credit-exchange/internal/adapter/http/dto"
	"carbon-credit-exchange/internal/core/ports"
	"carbon-credit-exchange/pkg/apperror"
	"carbon-credit-exchange/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles project certification endpoints.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// projectID parses the :id path parameter.
func projectID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid project id")
	}
	return id, nil
}

// Submit handles POST /api/v1/projects.
func (h *RegistryHandler) Submit(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SubmitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	project, err := h.registrySvc.SubmitProject(c.Request.Context(), caller, ports.SubmitProjectRequest{
		CarbonRemoved:          req.CarbonRemoved,
		EvidenceRef:            req.EvidenceRef,
		ExternalVerificationID: req.ExternalVerificationID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.NewProjectResponse(project))
}

// Edit handles PUT /api/v1/projects/:id.
func (h *RegistryHandler) Edit(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := projectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.EditProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	project, err := h.registrySvc.EditProject(c.Request.Context(), caller, id, req.EvidenceRef)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProjectResponse(project))
}

// Accept handles POST /api/v1/projects/:id/accept.
func (h *RegistryHandler) Accept(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := projectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.registrySvc.AcceptProject(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProjectResponse(project))
}

// Reject handles POST /api/v1/projects/:id/reject.
func (h *RegistryHandler) Reject(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	id, err := projectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.registrySvc.RejectProject(c.Request.Context(), caller, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProjectResponse(project))
}

// Get handles GET /api/v1/projects/:id.
func (h *RegistryHandler) Get(c *gin.Context) {
	id, err := projectID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.registrySvc.GetProject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewProjectResponse(project))
}

// ListMine handles GET /api/v1/projects.
func (h *RegistryHandler) ListMine(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	projects, err := h.registrySvc.ListByOwner(c.Request.Context(), caller)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.NewProjectResponse(&projects[i]))
	}
	response.OK(c, dto.ProjectListResponse{Items: items, Total: len(items)})
}
