package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type enterpriseRepo struct {
	db *pgxpool.Pool
}

func NewEnterpriseRepository(db *pgxpool.Pool) domain.EnterpriseRepository {
	return &enterpriseRepo{db: db}
}

// Create inserts the backing ENTERPRISE account and the enterprise row in
// one transaction so a half-registered enterprise can never be observed.
func (r *enterpriseRepo) Create(ctx context.Context, account *domain.Account, enterprise *domain.Enterprise) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	accountQuery := `INSERT INTO accounts (email, password, nick_name, one_line_introduce, career, image, social_link, user_role, positions, hits, created_at)
	                 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRow(ctx, accountQuery,
		account.Email, account.Password, account.NickName, account.OneLineIntroduce,
		account.Career, account.Image, account.SocialLink, account.Role,
		pq.Array(account.Positions), account.Hits, account.CreatedAt,
	).Scan(&account.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Account with this email already exists")
		}
		return apperror.Internal(err)
	}

	enterprise.AccountID = account.ID
	enterprise.Email = account.Email
	enterprise.CreatedAt = account.CreatedAt

	enterpriseQuery := `INSERT INTO enterprises (account_id, registration_number, name, address, ceo_name)
	                    VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = tx.QueryRow(ctx, enterpriseQuery,
		enterprise.AccountID, enterprise.RegistrationNumber, enterprise.Name,
		enterprise.Address, enterprise.CeoName,
	).Scan(&enterprise.ID)
	if err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

func (r *enterpriseRepo) GetByAccountID(ctx context.Context, accountID int64) (*domain.Enterprise, error) {
	query := `SELECT e.id, e.account_id, a.email, e.registration_number, e.name, e.address, e.ceo_name, a.created_at
	          FROM enterprises e
	          JOIN accounts a ON a.id = e.account_id
	          WHERE e.account_id = $1`
	var e domain.Enterprise
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&e.ID, &e.AccountID, &e.Email, &e.RegistrationNumber, &e.Name, &e.Address, &e.CeoName, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *enterpriseRepo) Update(ctx context.Context, enterprise *domain.Enterprise) error {
	query := `UPDATE enterprises SET
		registration_number = $2,
		name = $3,
		address = $4,
		ceo_name = $5
	WHERE account_id = $1`
	result, err := r.db.Exec(ctx, query,
		enterprise.AccountID, enterprise.RegistrationNumber, enterprise.Name,
		enterprise.Address, enterprise.CeoName,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *enterpriseRepo) Delete(ctx context.Context, accountID int64) error {
	// removing the backing account cascades to the enterprise row
	result, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1 AND user_role = $2`, accountID, domain.RoleEnterprise)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *enterpriseRepo) Filter(ctx context.Context, filter domain.EnterpriseFilter, page domain.PageRequest) ([]domain.Enterprise, int64, error) {
	where := []string{"a.user_role = $1"}
	args := []any{domain.RoleEnterprise}

	if filter.Name != "" {
		args = append(args, filter.Name)
		where = append(where, fmt.Sprintf("e.name ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.Address != "" {
		args = append(args, filter.Address)
		where = append(where, fmt.Sprintf("e.address ILIKE '%%' || $%d || '%%'", len(args)))
	}
	whereSQL := strings.Join(where, " AND ")

	query := fmt.Sprintf(`SELECT e.id, e.account_id, a.email, e.registration_number, e.name, e.address, e.ceo_name, a.created_at
	                      FROM enterprises e
	                      JOIN accounts a ON a.id = e.account_id
	                      WHERE %s
	                      ORDER BY a.created_at DESC
	                      LIMIT $%d OFFSET $%d`, whereSQL, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var enterprises []domain.Enterprise
	for rows.Next() {
		var e domain.Enterprise
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Email, &e.RegistrationNumber, &e.Name, &e.Address, &e.CeoName, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		enterprises = append(enterprises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*)
	                           FROM enterprises e
	                           JOIN accounts a ON a.id = e.account_id
	                           WHERE %s`, whereSQL)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return enterprises, total, nil
}
