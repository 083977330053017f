package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workplaceHandler handles HTTP requests related to workplaces.
type workplaceHandler struct {
	workplaceService portssvc.WorkplaceSvcFacade
}

// newWorkplaceHandler creates a new workplaceHandler.
func newWorkplaceHandler(ws portssvc.WorkplaceSvcFacade) *workplaceHandler {
	return &workplaceHandler{
		workplaceService: ws,
	}
}

// registerWorkplaceRoutes registers the workplace routes and nests the
// account, journal and report routes under a single workplace.
func registerWorkplaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkplaceHandler(services.Workplace)

	workplacesTopLevel := rg.Group("/workplaces")
	{
		workplacesTopLevel.POST("", h.createWorkplace)
		workplacesTopLevel.GET("", h.listUserWorkplaces)
	}

	workplaceSpecific := rg.Group("/workplaces/:workplace_id")
	{
		workplaceSpecific.GET("", h.getWorkplace)

		workplaceUsers := workplaceSpecific.Group("/users")
		{
			workplaceUsers.POST("", h.addUserToWorkplace)
			workplaceUsers.GET("", h.listWorkplaceUsers)
		}

		registerAccountRoutes(workplaceSpecific, services.Account, services.Journal)
		registerJournalRoutes(workplaceSpecific, services.Journal)
		registerReportingRoutes(workplaceSpecific, services.Reporting)
	}
}

// createWorkplace godoc
// @Summary Create a new workplace
// @Description Creates a new workplace and assigns the creator as admin.
// @Tags workplaces
// @Accept  json
// @Produce  json
// @Param   workplace body dto.CreateWorkplaceRequest true "Workplace details"
// @Success 201 {object} dto.WorkplaceResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown currency"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces [post]
func (h *workplaceHandler) createWorkplace(c *gin.Context) {
	var req dto.CreateWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	newWorkplace, err := h.workplaceService.CreateWorkplace(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "create workplace")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workplace created", slog.String("workplace_id", newWorkplace.WorkplaceID))
	c.JSON(http.StatusCreated, dto.ToWorkplaceResponse(*newWorkplace))
}

// listUserWorkplaces godoc
// @Summary List workplaces for current user
// @Tags workplaces
// @Produce  json
// @Success 200 {object} dto.ListWorkplacesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces [get]
func (h *workplaceHandler) listUserWorkplaces(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workplaces, err := h.workplaceService.ListUserWorkplaces(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "list workplaces")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkplacesResponse(workplaces))
}

// getWorkplace godoc
// @Summary Get a workplace
// @Tags workplaces
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {object} dto.WorkplaceResponse
// @Failure 403 {object} ErrorResponse "Caller is not a member"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id} [get]
func (h *workplaceHandler) getWorkplace(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	workplace, err := h.workplaceService.FindWorkplaceByID(c.Request.Context(), c.Param("workplace_id"), userID)
	if err != nil {
		respondError(c, err, "get workplace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceResponse(*workplace))
}

// addUserToWorkplace godoc
// @Summary Add a user to a workplace
// @Description Adds a specified user to a workplace with a given role (requires admin permission).
// @Tags workplaces
// @Accept  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   user_details body dto.AddUserToWorkplaceRequest true "User ID and Role"
// @Success 204 "No Content"
// @Failure 400 {object} BindingErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not admin"
// @Failure 404 {object} ErrorResponse "Workplace or user not found"
// @Failure 409 {object} ErrorResponse "User already a member"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/users [post]
func (h *workplaceHandler) addUserToWorkplace(c *gin.Context) {
	workplaceID := c.Param("workplace_id")

	var req dto.AddUserToWorkplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	addingUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.workplaceService.AddUserToWorkplace(c.Request.Context(), addingUserID, workplaceID, req); err != nil {
		respondError(c, err, "add user to workplace")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User added to workplace",
		slog.String("workplace_id", workplaceID),
		slog.String("target_user_id", req.UserID),
		slog.String("role", string(req.Role)))
	c.Status(http.StatusNoContent)
}

// listWorkplaceUsers godoc
// @Summary List members of a workplace
// @Tags workplaces
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Success 200 {array} dto.WorkplaceMemberResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/users [get]
func (h *workplaceHandler) listWorkplaceUsers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	members, err := h.workplaceService.ListWorkplaceUsers(c.Request.Context(), c.Param("workplace_id"), userID)
	if err != nil {
		respondError(c, err, "list workplace users")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkplaceMemberResponses(members))
}
