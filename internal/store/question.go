package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Question is a stored question with its canonical solution. The
// normalized answer forms are computed once at save time so grading
// never re-derives them.
type Question struct {
	ID         string
	Text       string
	Topic      string
	Grade      int
	Difficulty string
	Answer     string
	Normalized []string
	Steps      []string
	Source     string // "solver" or "llm"
	CreatedAt  time.Time
}

// QuestionRepo manages stored questions.
type QuestionRepo interface {
	// Save stores a new question.
	Save(ctx context.Context, q *Question) error

	// Get returns the question with the given ID, or nil if it does
	// not exist.
	Get(ctx context.Context, id string) (*Question, error)
}

// questionRepo implements QuestionRepo on database/sql.
type questionRepo struct {
	db *sql.DB
}

func (r *questionRepo) Save(ctx context.Context, q *Question) error {
	normalized, err := json.Marshal(q.Normalized)
	if err != nil {
		return fmt.Errorf("marshal normalized forms: %w", err)
	}
	steps, err := json.Marshal(q.Steps)
	if err != nil {
		return fmt.Errorf("marshal steps: %w", err)
	}

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO questions (id, text, topic, grade, difficulty, answer, normalized, steps, source, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Text, q.Topic, q.Grade, q.Difficulty, q.Answer,
		string(normalized), string(steps), q.Source, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("save question: %w", err)
	}
	return nil
}

func (r *questionRepo) Get(ctx context.Context, id string) (*Question, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, text, topic, grade, difficulty, answer, normalized, steps, source, created_at
		 FROM questions WHERE id = ?`, id)

	var q Question
	var normalized, steps string
	err := row.Scan(&q.ID, &q.Text, &q.Topic, &q.Grade, &q.Difficulty,
		&q.Answer, &normalized, &steps, &q.Source, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	if err := json.Unmarshal([]byte(normalized), &q.Normalized); err != nil {
		return nil, fmt.Errorf("unmarshal normalized forms: %w", err)
	}
	if err := json.Unmarshal([]byte(steps), &q.Steps); err != nil {
		return nil, fmt.Errorf("unmarshal steps: %w", err)
	}
	return &q, nil
}
