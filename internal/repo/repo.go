package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Project is one saved foundation design: the full calculation input and
// the engine's result, both stored as jsonb.
type Project struct {
	ID        int             `json:"id"`
	OwnerID   int             `json:"owner_id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, ownerID int, name string, input, result json.RawMessage) (int, error)
	ListProjects(ctx context.Context, ownerID int) ([]Project, error)
	GetProject(ctx context.Context, ownerID, projectID int) (Project, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresUserRepository) SaveProject(ctx context.Context, ownerID int, name string, input, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO projects (owner_id, name, input, result, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, ownerID, name, []byte(input), []byte(result)).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) ListProjects(ctx context.Context, ownerID int) ([]Project, error) {
	query := "SELECT id, owner_id, name, input, result, created_at FROM projects WHERE owner_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, (*[]byte)(&p.Input), (*[]byte)(&p.Result), &p.CreatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *PostgresUserRepository) GetProject(ctx context.Context, ownerID, projectID int) (Project, error) {
	var p Project
	query := "SELECT id, owner_id, name, input, result, created_at FROM projects WHERE owner_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, ownerID, projectID).
		Scan(&p.ID, &p.OwnerID, &p.Name, (*[]byte)(&p.Input), (*[]byte)(&p.Result), &p.CreatedAt)
	return p, err
}
