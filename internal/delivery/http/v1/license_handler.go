package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type LicenseHandler struct {
	licenseUC domain.LicenseUsecase
}

func NewLicenseHandler(protected *gin.RouterGroup, licenseUC domain.LicenseUsecase) {
	handler := &LicenseHandler{licenseUC: licenseUC}

	licenses := protected.Group("/licenses")
	{
		licenses.POST("", handler.Create)
		licenses.PUT("/:licenseId", handler.Update)
		licenses.DELETE("/:licenseId", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a license
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LicenseRequest  true  "License data"
// @Success      201      {object}  response.Response{data=domain.License}
// @Failure      400      {object}  response.Response
// @Router       /licenses [post]
// @Security     BearerAuth
func (h *LicenseHandler) Create(c *gin.Context) {
	var req domain.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	license, err := h.licenseUC.Create(c.Request.Context(), currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "License created", license)
}

// Update godoc
// @Summary      Update a license
// @Tags         licenses
// @Accept       json
// @Produce      json
// @Param        licenseId  path      int                    true  "License id"
// @Param        request    body      domain.LicenseRequest  true  "License data"
// @Success      200        {object}  response.Response{data=domain.License}
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /licenses/{licenseId} [put]
// @Security     BearerAuth
func (h *LicenseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "licenseId")
	if !ok {
		return
	}

	var req domain.LicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	license, err := h.licenseUC.Update(c.Request.Context(), id, currentAccountID(c), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "License updated", license)
}

// Delete godoc
// @Summary      Delete a license
// @Tags         licenses
// @Produce      json
// @Param        licenseId  path      int  true  "License id"
// @Success      200        {object}  response.Response{data=domain.License}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /licenses/{licenseId} [delete]
// @Security     BearerAuth
func (h *LicenseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "licenseId")
	if !ok {
		return
	}

	license, err := h.licenseUC.Delete(c.Request.Context(), id, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "License deleted", license)
}
