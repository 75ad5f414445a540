package domain

import "time"

// AccountResponse is the plain, viewer-independent profile projection.
type AccountResponse struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	NickName         string    `json:"nick_name"`
	OneLineIntroduce string    `json:"one_line_introduce"`
	Career           string    `json:"career"`
	Image            string    `json:"image"`
	SocialLink       string    `json:"social_link"`
	Role             string    `json:"role"`
	Positions        []string  `json:"positions"`
	Technologies     []string  `json:"technologies"`
	CreatedAt        time.Time `json:"created_at"`
}

// AccountDetailResponse is the viewer-relative projection: favoriteFlag and
// favoriteCount are computed against the caller's identity, not stored.
type AccountDetailResponse struct {
	AccountResponse
	Hits           int64           `json:"hits"`
	FavoriteCount  int             `json:"favorite_count"`
	FavoriteFlag   bool            `json:"favorite_flag"`
	Experiences    []Experience    `json:"experiences"`
	Licenses       []License       `json:"licenses"`
	Prizes         []Prize         `json:"prizes"`
	Projects       []Project       `json:"projects"`
	SelfInterviews []SelfInterview `json:"self_interviews"`
}

func NewAccountResponse(a *Account) *AccountResponse {
	return &AccountResponse{
		ID:               a.ID,
		Email:            a.Email,
		NickName:         a.NickName,
		OneLineIntroduce: a.OneLineIntroduce,
		Career:           a.Career,
		Image:            a.Image,
		SocialLink:       a.SocialLink,
		Role:             a.Role,
		Positions:        a.Positions,
		Technologies:     a.Technologies,
		CreatedAt:        a.CreatedAt,
	}
}

func NewAccountDetailResponse(a *Account, viewerID int64) *AccountDetailResponse {
	resp := &AccountDetailResponse{
		AccountResponse: *NewAccountResponse(a),
		Hits:            a.Hits,
		FavoriteCount:   len(a.FavoritedBy),
		Experiences:     a.Experiences,
		Licenses:        a.Licenses,
		Prizes:          a.Prizes,
		Projects:        a.Projects,
		SelfInterviews:  a.SelfInterviews,
	}
	for _, id := range a.FavoritedBy {
		if id == viewerID {
			resp.FavoriteFlag = true
			break
		}
	}
	return resp
}
