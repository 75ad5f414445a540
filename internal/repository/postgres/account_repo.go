package postgres

import (
	"context"
	"errors"
	"fmt"

	"pickme-backend/internal/domain"
	"pickme-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const accountColumns = `id, email, password, nick_name, one_line_introduce, career, image, social_link, user_role, positions, hits, created_at`

type accountRepo struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) domain.AccountRepository {
	return &accountRepo{db: db}
}

func scanAccount(row pgx.Row, a *domain.Account) error {
	var positions []string
	err := row.Scan(
		&a.ID, &a.Email, &a.Password, &a.NickName, &a.OneLineIntroduce, &a.Career,
		&a.Image, &a.SocialLink, &a.Role, pq.Array(&positions), &a.Hits, &a.CreatedAt,
	)
	a.Positions = positions
	return err
}

func (r *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO accounts (email, password, nick_name, one_line_introduce, career, image, social_link, user_role, positions, hits, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRow(ctx, query,
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

	if err := insertTechnologies(ctx, tx, account.ID, account.Technologies); err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

func insertTechnologies(ctx context.Context, tx pgx.Tx, accountID int64, technologies []string) error {
	for _, tech := range technologies {
		if _, err := tx.Exec(ctx,
			`INSERT INTO account_tech (account_id, technology) VALUES ($1, $2)`,
			accountID, tech,
		); err != nil {
			return fmt.Errorf("failed to insert technology: %w", err)
		}
	}
	return nil
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	var a domain.Account
	if err := scanAccount(r.db.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadTechnologies(ctx, &a); err != nil {
		return nil, err
	}
	if err := r.loadFavoritedBy(ctx, &a); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	var a domain.Account
	if err := scanAccount(r.db.QueryRow(ctx, query, email), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Update replaces scalar fields and positions, then the technology rows
// wholesale: every account_tech row is deleted and recreated, so row ids are
// not preserved across updates. All writes share one transaction.
func (r *accountRepo) Update(ctx context.Context, account *domain.Account) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	query := `UPDATE accounts SET
		nick_name = $2,
		one_line_introduce = $3,
		career = $4,
		image = $5,
		social_link = $6,
		positions = $7
	WHERE id = $1`
	result, err := tx.Exec(ctx, query,
		account.ID, account.NickName, account.OneLineIntroduce, account.Career,
		account.Image, account.SocialLink, pq.Array(account.Positions),
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM account_tech WHERE account_id = $1`, account.ID); err != nil {
		return apperror.Internal(err)
	}
	if err := insertTechnologies(ctx, tx, account.ID, account.Technologies); err != nil {
		return apperror.Internal(err)
	}

	return tx.Commit(ctx)
}

func (r *accountRepo) Delete(ctx context.Context, id int64) error {
	// child rows, tech rows and favorite rows cascade via FK constraints
	result, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepo) AddFavorite(ctx context.Context, accountID, viewerID int64) error {
	query := `INSERT INTO account_favorites (account_id, favorited_by) VALUES ($1, $2)
	          ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(ctx, query, accountID, viewerID)
	return err
}

func (r *accountRepo) FavoritedBy(ctx context.Context, accountID int64) ([]domain.Account, error) {
	query := `SELECT a.id, a.email, a.password, a.nick_name, a.one_line_introduce, a.career,
	                 a.image, a.social_link, a.user_role, a.positions, a.hits, a.created_at
	          FROM accounts a
	          JOIN account_favorites f ON f.favorited_by = a.id
	          WHERE f.account_id = $1
	          ORDER BY a.id`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := scanAccount(rows, &a); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountRepo) IncrementHits(ctx context.Context, accountID int64) (int64, error) {
	var hits int64
	err := r.db.QueryRow(ctx,
		`UPDATE accounts SET hits = hits + 1 WHERE id = $1 RETURNING hits`,
		accountID,
	).Scan(&hits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}
	return hits, nil
}

func (r *accountRepo) Filter(ctx context.Context, filter domain.AccountFilter, page domain.PageRequest) ([]domain.Account, int64, error) {
	whereSQL, args := buildAccountFilter(filter)

	query := fmt.Sprintf(`SELECT a.id, a.email, a.password, a.nick_name, a.one_line_introduce, a.career,
	                             a.image, a.social_link, a.user_role, a.positions, a.hits, a.created_at
	                      FROM accounts a
	                      WHERE %s
	                      ORDER BY a.created_at DESC
	                      LIMIT $%d OFFSET $%d`, whereSQL, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, page.Limit, page.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var a domain.Account
		if err := scanAccount(rows, &a); err != nil {
			return nil, 0, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM accounts a WHERE %s`, whereSQL)
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if err := r.attachTechnologies(ctx, accounts); err != nil {
		return nil, 0, err
	}

	return accounts, total, nil
}

// attachTechnologies loads the tech tags for a page of accounts in one query.
func (r *accountRepo) attachTechnologies(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	ids := make([]int64, len(accounts))
	index := make(map[int64]*domain.Account, len(accounts))
	for i := range accounts {
		ids[i] = accounts[i].ID
		index[accounts[i].ID] = &accounts[i]
	}

	rows, err := r.db.Query(ctx,
		`SELECT account_id, technology FROM account_tech WHERE account_id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var accountID int64
		var tech string
		if err := rows.Scan(&accountID, &tech); err != nil {
			return err
		}
		if a, ok := index[accountID]; ok {
			a.Technologies = append(a.Technologies, tech)
		}
	}
	return rows.Err()
}

func (r *accountRepo) loadTechnologies(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT technology FROM account_tech WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var tech string
		if err := rows.Scan(&tech); err != nil {
			return err
		}
		a.Technologies = append(a.Technologies, tech)
	}
	return rows.Err()
}

func (r *accountRepo) loadFavoritedBy(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT favorited_by FROM account_favorites WHERE account_id = $1`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		a.FavoritedBy = append(a.FavoritedBy, id)
	}
	return rows.Err()
}

func (r *accountRepo) loadChildren(ctx context.Context, a *domain.Account) error {
	if err := r.loadExperiences(ctx, a); err != nil {
		return fmt.Errorf("failed to fetch experiences: %w", err)
	}
	if err := r.loadLicenses(ctx, a); err != nil {
		return fmt.Errorf("failed to fetch licenses: %w", err)
	}
	if err := r.loadPrizes(ctx, a); err != nil {
		return fmt.Errorf("failed to fetch prizes: %w", err)
	}
	if err := r.loadProjects(ctx, a); err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}
	if err := r.loadSelfInterviews(ctx, a); err != nil {
		return fmt.Errorf("failed to fetch self interviews: %w", err)
	}
	return nil
}

func (r *accountRepo) loadExperiences(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, company_name, position, description, joined_at, retired_at
		 FROM experiences WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(&e.ID, &e.AccountID, &e.CompanyName, &e.Position, &e.Description, &e.JoinedAt, &e.RetiredAt); err != nil {
			return err
		}
		a.Experiences = append(a.Experiences, e)
	}
	return rows.Err()
}

func (r *accountRepo) loadLicenses(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, name, institution, description, issued_date
		 FROM licenses WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.License
		if err := rows.Scan(&l.ID, &l.AccountID, &l.Name, &l.Institution, &l.Description, &l.IssuedDate); err != nil {
			return err
		}
		a.Licenses = append(a.Licenses, l)
	}
	return rows.Err()
}

func (r *accountRepo) loadPrizes(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, name, competition, description, issued_date
		 FROM prizes WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Prize
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Competition, &p.Description, &p.IssuedDate); err != nil {
			return err
		}
		a.Prizes = append(a.Prizes, p)
	}
	return rows.Err()
}

func (r *accountRepo) loadProjects(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, name, role, description, project_link, started_at, ended_at
		 FROM projects WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Role, &p.Description, &p.ProjectLink, &p.StartedAt, &p.EndedAt); err != nil {
			return err
		}
		a.Projects = append(a.Projects, p)
	}
	return rows.Err()
}

func (r *accountRepo) loadSelfInterviews(ctx context.Context, a *domain.Account) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, title, content
		 FROM self_interviews WHERE account_id = $1 ORDER BY id`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.SelfInterview
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Title, &s.Content); err != nil {
			return err
		}
		a.SelfInterviews = append(a.SelfInterviews, s)
	}
	return rows.Err()
}
