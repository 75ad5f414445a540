package postgres

import (
	"fmt"
	"strings"

	"pickme-backend/internal/domain"
)

// buildAccountFilter translates the optional list criteria into a WHERE
// clause over `accounts a`. Blank fields contribute no predicate at all;
// the USER role restriction is always present. Returns the clause and its
// positional arguments, shared by the page and count queries.
func buildAccountFilter(f domain.AccountFilter) (string, []any) {
	where := []string{"a.user_role = $1"}
	args := []any{domain.RoleUser}

	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.NickName != "" {
		add("a.nick_name = $%d", f.NickName)
	}
	if f.OneLineIntroduce != "" {
		add("a.one_line_introduce ILIKE '%%' || $%d || '%%'", f.OneLineIntroduce)
	}
	if f.Career != "" {
		add("a.career = $%d", f.Career)
	}
	if f.Position != "" {
		add("$%d = ANY(a.positions)", f.Position)
	}
	if f.Technology != "" {
		add("EXISTS (SELECT 1 FROM account_tech t WHERE t.account_id = a.id AND t.technology = $%d)", f.Technology)
	}

	return strings.Join(where, " AND "), args
}
