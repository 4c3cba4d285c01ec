package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Attempt records one graded answer submission.
type Attempt struct {
	ID         string
	QuestionID string
	Answer     string
	Attempt    int
	Correct    bool
	Confidence float64
	Points     int
	CreatedAt  time.Time
}

// AttemptRepo manages answer attempts.
type AttemptRepo interface {
	// Save stores a new attempt.
	Save(ctx context.Context, a *Attempt) error

	// ListByQuestion returns all attempts for a question in submission
	// order.
	ListByQuestion(ctx context.Context, questionID string) ([]*Attempt, error)

	// CountByQuestion returns how many attempts a question has.
	CountByQuestion(ctx context.Context, questionID string) (int, error)
}

// attemptRepo implements AttemptRepo on database/sql.
type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Save(ctx context.Context, a *Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts (id, question_id, answer, attempt, correct, confidence, points, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.QuestionID, a.Answer, a.Attempt, a.Correct, a.Confidence, a.Points, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByQuestion(ctx context.Context, questionID string) ([]*Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question_id, answer, attempt, correct, confidence, points, created_at
		 FROM attempts WHERE question_id = ? ORDER BY attempt ASC, created_at ASC`, questionID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var out []*Attempt
	for rows.Next() {
		var a Attempt
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Answer, &a.Attempt,
			&a.Correct, &a.Confidence, &a.Points, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *attemptRepo) CountByQuestion(ctx context.Context, questionID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM attempts WHERE question_id = ?`, questionID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}
