package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	projects := protected.Group("/projects")
	{
		projects.POST("", handler.Create)
		projects.PUT("/:projectId", handler.Update)
		projects.DELETE("/:projectId", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ProjectRequest  true  "Project data"
// @Success      201      {object}  response.Response{data=domain.Project}
// @Failure      400      {object}  response.Response
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) {
	var req domain.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", project)
}

// Update godoc
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        projectId  path      int                    true  "Project id"
// @Param        request    body      domain.ProjectRequest  true  "Project data"
// @Success      200        {object}  response.Response{data=domain.Project}
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /projects/{projectId} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req domain.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), id, currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        projectId  path      int  true  "Project id"
// @Success      200        {object}  response.Response{data=domain.Project}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /projects/{projectId} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectUC.Delete(c.Request.Context(), id, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", project)
}
