package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PrizeHandler struct {
	prizeUC domain.PrizeUsecase
}

func NewPrizeHandler(protected *gin.RouterGroup, prizeUC domain.PrizeUsecase) {
	handler := &PrizeHandler{prizeUC: prizeUC}

	prizes := protected.Group("/prizes")
	{
		prizes.POST("", handler.Create)
		prizes.PUT("/:prizeId", handler.Update)
		prizes.DELETE("/:prizeId", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a prize
// @Tags         prizes
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PrizeRequest  true  "Prize data"
// @Success      201      {object}  response.Response{data=domain.Prize}
// @Failure      400      {object}  response.Response
// @Router       /prizes [post]
// @Security     BearerAuth
func (h *PrizeHandler) Create(c *gin.Context) {
	var req domain.PrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	prize, err := h.prizeUC.Create(c.Request.Context(), currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Prize created", prize)
}

// Update godoc
// @Summary      Update a prize
// @Tags         prizes
// @Accept       json
// @Produce      json
// @Param        prizeId  path      int                  true  "Prize id"
// @Param        request  body      domain.PrizeRequest  true  "Prize data"
// @Success      200      {object}  response.Response{data=domain.Prize}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /prizes/{prizeId} [put]
// @Security     BearerAuth
func (h *PrizeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "prizeId")
	if !ok {
		return
	}

	var req domain.PrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	prize, err := h.prizeUC.Update(c.Request.Context(), id, currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Prize updated", prize)
}

// Delete godoc
// @Summary      Delete a prize
// @Tags         prizes
// @Produce      json
// @Param        prizeId  path      int  true  "Prize id"
// @Success      200      {object}  response.Response{data=domain.Prize}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /prizes/{prizeId} [delete]
// @Security     BearerAuth
func (h *PrizeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "prizeId")
	if !ok {
		return
	}

	prize, err := h.prizeUC.Delete(c.Request.Context(), id, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Prize deleted", prize)
}
