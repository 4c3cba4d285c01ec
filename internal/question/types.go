// Package question generates practice questions from topic templates,
// with numbers scaled to grade and difficulty and chosen so answers
// come out clean (integer equation solutions, exact divisions).
package question

import "fmt"

// Question is a generated practice question. The canonical answer is
// derived separately so the same question can be re-solved on demand.
type Question struct {
	ID         string     `json:"id"`
	Text       string     `json:"text"`
	Topic      Topic      `json:"topic"`
	Grade      int        `json:"grade"`
	Difficulty Difficulty `json:"difficulty"`
}

// Topic is a question category. Each topic maps to a family of
// templates the deterministic solver can handle.
type Topic string

const (
	TopicAlgebra    Topic = "algebra"
	TopicGeometry   Topic = "geometry"
	TopicPercentage Topic = "percentages"
	TopicArithmetic Topic = "arithmetic"
)

// Topics lists the supported topics in display order.
func Topics() []Topic {
	return []Topic{TopicAlgebra, TopicGeometry, TopicPercentage, TopicArithmetic}
}

// Valid reports whether the topic is one this generator supports.
func (t Topic) Valid() bool {
	switch t {
	case TopicAlgebra, TopicGeometry, TopicPercentage, TopicArithmetic:
		return true
	}
	return false
}

// Difficulty scales number ranges and template selection.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether the difficulty is recognized.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Params selects what kind of question to generate.
type Params struct {
	Grade      int
	Difficulty Difficulty
	Topic      Topic
}

// Validate checks the parameter ranges.
func (p Params) Validate() error {
	if p.Grade < 1 || p.Grade > 12 {
		return fmt.Errorf("question: grade %d out of range 1-12", p.Grade)
	}
	if !p.Difficulty.Valid() {
		return fmt.Errorf("question: unknown difficulty %q", p.Difficulty)
	}
	if !p.Topic.Valid() {
		return fmt.Errorf("question: unknown topic %q", p.Topic)
	}
	return nil
}
