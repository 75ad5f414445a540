package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SelfInterviewHandler struct {
	selfInterviewUC domain.SelfInterviewUsecase
}

func NewSelfInterviewHandler(protected *gin.RouterGroup, selfInterviewUC domain.SelfInterviewUsecase) {
	handler := &SelfInterviewHandler{selfInterviewUC: selfInterviewUC}

	selfInterviews := protected.Group("/self-interviews")
	{
		selfInterviews.POST("", handler.Create)
		selfInterviews.PUT("/:selfInterviewId", handler.Update)
		selfInterviews.DELETE("/:selfInterviewId", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a self interview
// @Tags         self-interviews
// @Accept       json
// @Produce      json
// @Param        request  body      domain.SelfInterviewRequest  true  "Self interview data"
// @Success      201      {object}  response.Response{data=domain.SelfInterview}
// @Failure      400      {object}  response.Response
// @Router       /self-interviews [post]
// @Security     BearerAuth
func (h *SelfInterviewHandler) Create(c *gin.Context) {
	var req domain.SelfInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	selfInterview, err := h.selfInterviewUC.Create(c.Request.Context(), currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Self interview created", selfInterview)
}

// Update godoc
// @Summary      Update a self interview
// @Tags         self-interviews
// @Accept       json
// @Produce      json
// @Param        selfInterviewId  path      int                          true  "Self interview id"
// @Param        request          body      domain.SelfInterviewRequest  true  "Self interview data"
// @Success      200              {object}  response.Response{data=domain.SelfInterview}
// @Failure      400              {object}  response.Response
// @Failure      403              {object}  response.Response
// @Failure      404              {object}  response.Response
// @Router       /self-interviews/{selfInterviewId} [put]
// @Security     BearerAuth
func (h *SelfInterviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "selfInterviewId")
	if !ok {
		return
	}

	var req domain.SelfInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	selfInterview, err := h.selfInterviewUC.Update(c.Request.Context(), id, currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Self interview updated", selfInterview)
}

// Delete godoc
// @Summary      Delete a self interview
// @Tags         self-interviews
// @Produce      json
// @Param        selfInterviewId  path      int  true  "Self interview id"
// @Success      200              {object}  response.Response{data=domain.SelfInterview}
// @Failure      403              {object}  response.Response
// @Failure      404              {object}  response.Response
// @Router       /self-interviews/{selfInterviewId} [delete]
// @Security     BearerAuth
func (h *SelfInterviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "selfInterviewId")
	if !ok {
		return
	}

	selfInterview, err := h.selfInterviewUC.Delete(c.Request.Context(), id, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Self interview deleted", selfInterview)
}
