package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type UserRepository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

// Record is one persisted calculation outcome.
type Record struct {
	ID          int             `json:"id"`
	UserID      int             `json:"-"`
	Slug        string          `json:"calculator"`
	Input       json.RawMessage `json:"input"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Value       float64         `json:"value"`
	Units       string          `json:"units"`
	CreatedAt   time.Time       `json:"created_at"`
}

type RecordRepository interface {
	SaveRecord(ctx context.Context, rec Record) (int, error)
	ListRecords(ctx context.Context, userID, limit int) ([]Record, error)
	DeleteRecord(ctx context.Context, userID, id int) error
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := s.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (s *PostgresStore) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := s.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (s *PostgresStore) SaveRecord(ctx context.Context, rec Record) (int, error) {
	var id int
	query := `INSERT INTO calculation_records
		(user_id, calculator_slug, input_data, result_title, result_description, result_value, result_units)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := s.db.QueryRowContext(ctx, query,
		rec.UserID, rec.Slug, []byte(rec.Input), rec.Title, rec.Description, rec.Value, rec.Units).Scan(&id)
	return id, err
}

func (s *PostgresStore) ListRecords(ctx context.Context, userID, limit int) ([]Record, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT id, calculator_slug, input_data, result_title, result_description, result_value, result_units, created_at
		FROM calculation_records WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2`
	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		rec := Record{UserID: userID}
		var input []byte
		if err := rows.Scan(&rec.ID, &rec.Slug, &input, &rec.Title, &rec.Description, &rec.Value, &rec.Units, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Input = json.RawMessage(input)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteRecord(ctx context.Context, userID, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM calculation_records WHERE id=$1 AND user_id=$2", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
