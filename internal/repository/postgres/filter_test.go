package postgres

import (
	"testing"

	"pickme-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildAccountFilter(t *testing.T) {
	t.Run("Empty filter keeps only the role restriction", func(t *testing.T) {
		where, args := buildAccountFilter(domain.AccountFilter{})
		assert.Equal(t, "a.user_role = $1", where)
		assert.Equal(t, []any{domain.RoleUser}, args)
	})

	t.Run("Blank fields contribute no predicate", func(t *testing.T) {
		where, args := buildAccountFilter(domain.AccountFilter{Career: "junior"})
		assert.Equal(t, "a.user_role = $1 AND a.career = $2", where)
		assert.Equal(t, []any{domain.RoleUser, "junior"}, args)
	})

	t.Run("Introduce matches by substring", func(t *testing.T) {
		where, args := buildAccountFilter(domain.AccountFilter{OneLineIntroduce: "backend"})
		assert.Equal(t, "a.user_role = $1 AND a.one_line_introduce ILIKE '%' || $2 || '%'", where)
		assert.Equal(t, []any{domain.RoleUser, "backend"}, args)
	})

	t.Run("Position matches set membership", func(t *testing.T) {
		where, args := buildAccountFilter(domain.AccountFilter{Position: "devops"})
		assert.Equal(t, "a.user_role = $1 AND $2 = ANY(a.positions)", where)
		assert.Equal(t, []any{domain.RoleUser, "devops"}, args)
	})

	t.Run("Technology matches via existential join", func(t *testing.T) {
		where, _ := buildAccountFilter(domain.AccountFilter{Technology: "go"})
		assert.Contains(t, where, "EXISTS (SELECT 1 FROM account_tech t WHERE t.account_id = a.id AND t.technology = $2)")
	})

	t.Run("All criteria are ANDed with increasing placeholders", func(t *testing.T) {
		where, args := buildAccountFilter(domain.AccountFilter{
			NickName:         "kim",
			OneLineIntroduce: "backend",
			Career:           "junior",
			Position:         "devops",
			Technology:       "go",
		})
		assert.Equal(t,
			"a.user_role = $1 AND a.nick_name = $2 AND a.one_line_introduce ILIKE '%' || $3 || '%' AND a.career = $4 AND $5 = ANY(a.positions) AND EXISTS (SELECT 1 FROM account_tech t WHERE t.account_id = a.id AND t.technology = $6)",
			where)
		assert.Equal(t, []any{domain.RoleUser, "kim", "backend", "junior", "devops", "go"}, args)
	})
}
