package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"pickme-backend/internal/delivery/http/response"
	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountUC domain.AccountUsecase
}

func NewAccountHandler(public, protected *gin.RouterGroup, accountUC domain.AccountUsecase) {
	handler := &AccountHandler{accountUC: accountUC}

	// Sign-up is the only unauthenticated account route
	public.POST("/accounts", handler.Create)

	accounts := protected.Group("/accounts")
	{
		accounts.GET("", handler.Filter)
		accounts.GET("/profile", handler.Profile)
		accounts.GET("/:accountId", handler.Load)
		accounts.PUT("/:accountId", handler.Update)
		accounts.DELETE("/:accountId", handler.Delete)
		accounts.POST("/:accountId/favorite", handler.Favorite)
		accounts.GET("/:accountId/favorite", handler.FavoritedBy)
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest(fmt.Sprintf("Invalid %s", name)))
		return 0, false
	}
	return id, true
}

func currentAccountID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyAccountID))
}

func pageRequest(c *gin.Context) domain.PageRequest {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return domain.PageRequest{Offset: offset, Limit: limit}
}

// viewMarkerName is per target so visiting one profile never suppresses
// the hit count of another.
func viewMarkerName(accountID int64) string {
	return fmt.Sprintf("pickme_view_%d", accountID)
}

// Create godoc
// @Summary      Sign up
// @Description  Create a new candidate account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      domain.AccountCreateRequest  true  "Account data"
// @Success      201      {object}  response.Response{data=domain.AccountResponse}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req domain.AccountCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	account, err := h.accountUC.Create(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", account)
}

// Filter godoc
// @Summary      List accounts
// @Description  Filtered, paginated candidate listing
// @Tags         accounts
// @Produce      json
// @Param        nickName          query     string  false  "Exact nickname"
// @Param        oneLineIntroduce  query     string  false  "Introduce substring"
// @Param        career            query     string  false  "Exact career"
// @Param        position          query     string  false  "Position membership"
// @Param        technology        query     string  false  "Technology tag"
// @Param        offset            query     int     false  "Zero-based offset"
// @Param        limit             query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=domain.AccountPage}
// @Failure      401  {object}  response.Response
// @Router       /accounts [get]
// @Security     BearerAuth
func (h *AccountHandler) Filter(c *gin.Context) {
	var filter domain.AccountFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.Error(apperror.BadRequest("Invalid query parameters"))
		return
	}

	page, err := h.accountUC.Filter(c.Request.Context(), filter, pageRequest(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Accounts", page)
}

// Profile godoc
// @Summary      Get own profile
// @Description  Full profile of the authenticated account, without hit counting
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.AccountDetailResponse}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /accounts/profile [get]
// @Security     BearerAuth
func (h *AccountHandler) Profile(c *gin.Context) {
	profile, err := h.accountUC.LoadProfile(c.Request.Context(), currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account profile", profile)
}

// Load godoc
// @Summary      View an account
// @Description  Full profile of another account; counts a hit once per session
// @Tags         accounts
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=domain.AccountDetailResponse}
// @Failure      401        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /accounts/{accountId} [get]
// @Security     BearerAuth
func (h *AccountHandler) Load(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	marker := viewMarkerName(targetID)
	_, cookieErr := c.Cookie(marker)
	markerSeen := cookieErr == nil

	detail, issueMarker, err := h.accountUC.LoadAccount(c.Request.Context(), targetID, currentAccountID(c), markerSeen)
	if err != nil {
		c.Error(err)
		return
	}

	if issueMarker {
		// Session cookie; the next visit in this browser session is not counted
		c.SetCookie(marker, uuid.NewString(), 0, "/", "", false, true)
	}

	response.Success(c, http.StatusOK, "Account", detail)
}

// Update godoc
// @Summary      Update own account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountId  path      int                          true  "Account id"
// @Param        request    body      domain.AccountUpdateRequest  true  "Account data"
// @Success      200        {object}  response.Response{data=domain.AccountResponse}
// @Failure      400        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /accounts/{accountId} [put]
// @Security     BearerAuth
func (h *AccountHandler) Update(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}
	if targetID != currentAccountID(c) {
		c.Error(apperror.Forbidden("You can only modify your own account"))
		return
	}

	var req domain.AccountUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	account, err := h.accountUC.Update(c.Request.Context(), targetID, &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account updated", account)
}

// Delete godoc
// @Summary      Delete own account
// @Tags         accounts
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=domain.AccountResponse}
// @Failure      403        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /accounts/{accountId} [delete]
// @Security     BearerAuth
func (h *AccountHandler) Delete(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}
	if targetID != currentAccountID(c) {
		c.Error(apperror.Forbidden("You can only delete your own account"))
		return
	}

	account, err := h.accountUC.Delete(c.Request.Context(), targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", account)
}

// Favorite godoc
// @Summary      Favorite an account
// @Description  Idempotent; favoriting twice leaves a single favorite
// @Tags         accounts
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=domain.AccountDetailResponse}
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /accounts/{accountId}/favorite [post]
// @Security     BearerAuth
func (h *AccountHandler) Favorite(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	detail, err := h.accountUC.Favorite(c.Request.Context(), targetID, currentAccountID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account favorited", detail)
}

// FavoritedBy godoc
// @Summary      List accounts that favorited an account
// @Tags         accounts
// @Produce      json
// @Param        accountId  path      int  true  "Account id"
// @Success      200        {object}  response.Response{data=[]domain.AccountResponse}
// @Failure      404        {object}  response.Response
// @Router       /accounts/{accountId}/favorite [get]
// @Security     BearerAuth
func (h *AccountHandler) FavoritedBy(c *gin.Context) {
	targetID, ok := pathID(c, "accountId")
	if !ok {
		return
	}

	accounts, err := h.accountUC.FavoritedBy(c.Request.Context(), targetID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorited by", accounts)
}
