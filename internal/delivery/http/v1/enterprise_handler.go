package v1

import (
	"net/http"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnterpriseHandler struct {
	enterpriseUC domain.EnterpriseUsecase
}

func NewEnterpriseHandler(public, protected *gin.RouterGroup, enterpriseUC domain.EnterpriseUsecase) {
	handler := &EnterpriseHandler{enterpriseUC: enterpriseUC}

	public.POST("/enterprises", handler.Create)

	enterprises := protected.Group("/enterprises")
	{
		enterprises.GET("", handler.Filter)
		enterprises.GET("/profile", handler.Profile)
		enterprises.GET("/:accountId", handler.Load)
		enterprises.PUT("/:accountId", handler.Update)
		enterprises.DELETE("/:accountId", handler.Delete)
		enterprises.POST("/suggestions/:accountId", handler.SendSuggestion)
	}
}

// Create godoc
// @Summary      Sign up an enterprise
// @Description  Create an enterprise account and profile in one step
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        request  body      domain.EnterpriseCreateRequest  true  "Enterprise data"
// @Success      201      {object}  response.Response{data=domain.Enterprise}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /enterprises [post]
func (h *EnterpriseHandler) Create(c *gin.Context) {
	var req domain.EnterpriseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	enterprise, err := h.enterpriseUC.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Enterprise created", enterprise)
}

// Filter godoc
// @Summary      List enterprises
// @Tags         enterprises
// @Produce      json
// @Param        name     query     string  false  "Name substring"
// @Param        address  query     string  false  "Address substring"
// @Param        offset   query     int     false  "Zero-based offset"
// @Param        limit    query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.EnterprisePage}
// @Failure      401  {object}  response.Response
// @Router       /enterprises [get]
// @Security     BearerAuth
func (h *EnterpriseHandler) Filter(c *gin.Context) {
	var filter domain.EnterpriseFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid query parameters"))
		return
	}

	page, err := h.enterpriseUC.Filter(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enterprises", page)
}

// Profile godoc
// @Summary      Get own enterprise profile
// @Tags         enterprises
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Enterprise}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /enterprises/profile [get]
// @Security     BearerAuth
func (h *EnterpriseHandler) Profile(c *gin.Context) {
	enterprise, err := h.enterpriseUC.Load(c.Request.Context(), currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enterprise profile", enterprise)
}

// Load godoc
// @Summary      View an enterprise
// @Tags         enterprises
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=domain.Enterprise}
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /enterprises/{accountId} [get]
// @Security     BearerAuth
func (h *EnterpriseHandler) Load(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	enterprise, err := h.enterpriseUC.Load(c.Request.Context(), targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enterprise", enterprise)
}

// Update godoc
// @Summary      Update own enterprise
// @Tags         enterprises
// @Accept       json
// @Produce      json
// @Param        accountId  path      int                             true  "Account id"
// @Param        request    body      domain.EnterpriseUpdateRequest  true  "Enterprise data"
// @Success      200        {object}  response.Response{data=domain.Enterprise}
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /enterprises/{accountId} [put]
// @Security     BearerAuth
func (h *EnterpriseHandler) Update(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}
	if targetID != currentAccountID(c) {
		c.Error(apperror.Forbidden("You can only modify your own enterprise"))
		return
	}

	var req domain.EnterpriseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	enterprise, err := h.enterpriseUC.Update(c.Request.Context(), targetID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enterprise updated", enterprise)
}

// Delete godoc
// @Summary      Delete own enterprise
// @Tags         enterprises
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=domain.Enterprise}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /enterprises/{accountId} [delete]
// @Security     BearerAuth
func (h *EnterpriseHandler) Delete(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}
	if targetID != currentAccountID(c) {
		c.Error(apperror.Forbidden("You can only delete your own enterprise"))
		return
	}

	enterprise, err := h.enterpriseUC.Delete(c.Request.Context(), targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Enterprise deleted", enterprise)
}

// SendSuggestion godoc
// @Summary      Send a suggestion email to a candidate
// @Description  Mails the candidate that this enterprise is interested
// @Tags         enterprises
// @Produce      json
// @Param        accountId  path      int  true  "Candidate account id"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Failure      502        {object}  response.Response
// @Router       /enterprises/suggestions/{accountId} [post]
// @Security     BearerAuth
func (h *EnterpriseHandler) SendSuggestion(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	if err := h.enterpriseUC.SendSuggestion(c.Request.Context(), targetID, currentAccountID(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Suggestion sent", nil)
}
