package service

import (
	"context"
	"errors"

	"legalease-backend/models"
)

var ErrQuestionNotFound = errors.New("quiz question not found")

// QuizSource provides the quiz questions
type QuizSource interface {
	Quiz(ctx context.Context) []models.QuizQuestion
}

// QuizService serves the legal knowledge quiz
type QuizService struct {
	source QuizSource
}

// NewQuizService creates a new quiz service
func NewQuizService(source QuizSource) *QuizService {
	return &QuizService{source: source}
}

// AnswerResult is the outcome of checking one answer
type AnswerResult struct {
	Index         int    `json:"index"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	CorrectOption string `json:"correct_option"`
	Explanation   string `json:"explanation"`
}

// Questions returns the quiz with the answers withheld
func (s *QuizService) Questions(ctx context.Context) []models.PublicQuizQuestion {
	questions := s.source.Quiz(ctx)
	out := make([]models.PublicQuizQuestion, 0, len(questions))
	for i, q := range questions {
		out = append(out, models.PublicQuizQuestion{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return out
}

// Answer checks the chosen option of question index
func (s *QuizService) Answer(ctx context.Context, index, answer int) (*AnswerResult, error) {
	questions := s.source.Quiz(ctx)
	if index < 0 || index >= len(questions) {
		return nil, ErrQuestionNotFound
	}

	q := questions[index]
	return &AnswerResult{
		Index:         index,
		Correct:       answer == q.CorrectAnswer,
		CorrectAnswer: q.CorrectAnswer,
		CorrectOption: q.Options[q.CorrectAnswer],
		Explanation:   q.Explanation,
	}, nil
}
