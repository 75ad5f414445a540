package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAccountDetailResponse(t *testing.T) {
	account := &Account{
		ID:          1,
		Email:       "dev@test.com",
		NickName:    "dev",
		Hits:        7,
		FavoritedBy: []int64{2, 3},
	}

	t.Run("Flag is set for a viewer who favorited", func(t *testing.T) {
		resp := NewAccountDetailResponse(account, 2)
		assert.True(t, resp.FavoriteFlag)
		assert.Equal(t, 2, resp.FavoriteCount)
		assert.Equal(t, int64(7), resp.Hits)
	})

	t.Run("Flag is clear for any other viewer", func(t *testing.T) {
		resp := NewAccountDetailResponse(account, 4)
		assert.False(t, resp.FavoriteFlag)
		assert.Equal(t, 2, resp.FavoriteCount)
	})

	t.Run("Plain projection carries no viewer state", func(t *testing.T) {
		resp := NewAccountResponse(account)
		assert.Equal(t, "dev", resp.NickName)
		assert.Equal(t, "dev@test.com", resp.Email)
	})
}
