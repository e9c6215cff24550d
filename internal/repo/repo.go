package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type CalculationRecord struct {
	ID        int             `json:"id"`
	Theory    string          `json:"theory"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveCalculation(ctx context.Context, userID int, theory string, input, result []byte) (int, error)
	ListCalculations(ctx context.Context, userID, limit int) ([]CalculationRecord, error)
	GetCalculation(ctx context.Context, userID, id int) (CalculationRecord, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
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

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, theory string, input, result []byte) (int, error) {
	var id int
	query := `INSERT INTO calculations (user_id, theory, input, result, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, theory, input, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID, limit int) ([]CalculationRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT id, theory, input, result, created_at FROM calculations
	          WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CalculationRecord
	for rows.Next() {
		var rec CalculationRecord
		if err := rows.Scan(&rec.ID, &rec.Theory, &rec.Input, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PostgresRepository) GetCalculation(ctx context.Context, userID, id int) (CalculationRecord, error) {
	var rec CalculationRecord
	query := `SELECT id, theory, input, result, created_at FROM calculations
	          WHERE user_id=$1 AND id=$2`
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&rec.ID, &rec.Theory, &rec.Input, &rec.Result, &rec.CreatedAt)
	return rec, err
}
