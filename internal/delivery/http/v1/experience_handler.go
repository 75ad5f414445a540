package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(protected *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	experiences := protected.Group("/experiences")
	{
		experiences.POST("", handler.Create)
		experiences.PUT("/:experienceId", handler.Update)
		experiences.DELETE("/:experienceId", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ExperienceRequest  true  "Experience data"
// @Success      201      {object}  response.Response{data=domain.Experience}
// @Failure      400      {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	experience, err := h.experienceUC.Create(c.Request.Context(), currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience created", experience)
}

// Update godoc
// @Summary      Update a work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experienceId  path      int                       true  "Experience id"
// @Param        request       body      domain.ExperienceRequest  true  "Experience data"
// @Success      200           {object}  response.Response{data=domain.Experience}
// @Failure      400           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /experiences/{experienceId} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "experienceId")
	if !ok {
		return
	}

	var req domain.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	experience, err := h.experienceUC.Update(c.Request.Context(), id, currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", experience)
}

// Delete godoc
// @Summary      Delete a work experience
// @Tags         experiences
// @Produce      json
// @Param        experienceId  path      int  true  "Experience id"
// @Success      200           {object}  response.Response{data=domain.Experience}
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /experiences/{experienceId} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "experienceId")
	if !ok {
		return
	}

	experience, err := h.experienceUC.Delete(c.Request.Context(), id, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", experience)
}
