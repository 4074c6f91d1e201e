package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// PostgresUserRepository implements user persistence using a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given database connection.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

const userColumns = `id, username, password_hash, full_name, email, role, branch_id`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var (
		u      models.User
		branch sql.NullInt64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.FullName, &u.Email, &u.Role, &branch); err != nil {
		return nil, err
	}
	u.BranchID = ptrInt(branch)
	return &u, nil
}

// UserExists checks whether a user with the specified username exists in the database.
func (r *PostgresUserRepository) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username,
	).Scan(&exists)
	return exists, err
}

// CreateUser inserts a user with the given password hash and returns its id.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, u models.User) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, full_name, email, role, branch_id)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id
	`, u.Username, u.PasswordHash, u.FullName, u.Email, u.Role, nullInt(u.BranchID)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("CreateUser: %w", classify(err))
	}
	return id, nil
}

// GetByUsername fetches a user including the password hash.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return u, nil
}

// GetByID fetches a user by id.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetByID: %w", err)
	}
	return u, nil
}

// ListUsers returns one page of users and the total count. Search matches
// username or full name; BranchID narrows to one branch.
func (r *PostgresUserRepository) ListUsers(ctx context.Context, p models.ListParams) ([]models.User, int64, error) {
	var w whereBuilder
	if p.Search != "" {
		w.add("(username ILIKE $%[1]d OR full_name ILIKE $%[1]d)", "%"+p.Search+"%")
	}
	if p.Status != "" {
		w.add("role = $%d", p.Status)
	}
	if p.BranchID > 0 {
		w.add("branch_id = $%d", p.BranchID)
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListUsers count: %w", err)
	}

	limit, args := w.page(p)
	rows, err := r.DB.QueryContext(ctx, `SELECT `+userColumns+` FROM users`+w.sql()+
		orderBy(p.Sort, map[string]string{"username": "username", "fullName": "full_name", "id": "id"}, "id")+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		users = append(users, *u)
	}
	return users, total, rows.Err()
}
