package service

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeQuestions(n int) []model.CourseQuestion {
	qs := make([]model.CourseQuestion, n)
	for i := range qs {
		qs[i].ID = uint(i + 1)
		qs[i].CorrectOption = 0
	}
	return qs
}

func fullAnswers(qs []model.CourseQuestion, correct int) QuizAnswers {
	answers := make(QuizAnswers, len(qs))
	for i, q := range qs {
		if i < correct {
			answers[q.ID] = q.CorrectOption
		} else {
			answers[q.ID] = q.CorrectOption + 1
		}
	}
	return answers
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    int
	}{
		{"all correct", 10, 10, 100},
		{"all wrong", 10, 0, 0},
		{"seven of ten", 10, 7, 70},
		{"one of three rounds half up", 3, 1, 33},
		{"two of three rounds half up", 3, 2, 67},
		{"five of six", 6, 5, 83},
		{"half of eight", 8, 4, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := makeQuestions(tt.total)
			got, err := ScoreQuiz(qs, fullAnswers(qs, tt.correct))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreQuizDeterministic(t *testing.T) {
	qs := makeQuestions(7)
	answers := fullAnswers(qs, 5)

	first, err := ScoreQuiz(qs, answers)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ScoreQuiz(qs, answers)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestScoreQuizIncompleteSubmission(t *testing.T) {
	qs := makeQuestions(5)

	t.Run("no questions", func(t *testing.T) {
		_, err := ScoreQuiz(nil, QuizAnswers{})
		assert.ErrorIs(t, err, util.ErrIncompleteSubmission)
	})

	t.Run("missing answers", func(t *testing.T) {
		answers := fullAnswers(qs, 5)
		delete(answers, qs[0].ID)
		_, err := ScoreQuiz(qs, answers)
		assert.ErrorIs(t, err, util.ErrIncompleteSubmission)
	})

	t.Run("answer for unknown question", func(t *testing.T) {
		answers := fullAnswers(qs, 5)
		delete(answers, qs[0].ID)
		answers[999] = 0
		_, err := ScoreQuiz(qs, answers)
		assert.ErrorIs(t, err, util.ErrIncompleteSubmission)
	})

	t.Run("empty submission", func(t *testing.T) {
		_, err := ScoreQuiz(qs, QuizAnswers{})
		assert.ErrorIs(t, err, util.ErrIncompleteSubmission)
	})
}

func TestQuizPassed(t *testing.T) {
	l2 := &model.Course{Tier: model.TierL2}
	assert.False(t, QuizPassed(l2, 84))
	assert.True(t, QuizPassed(l2, 85))

	override := &model.Course{Tier: model.TierFoundation, PassMarkOverride: 95}
	assert.False(t, QuizPassed(override, 90))
	assert.True(t, QuizPassed(override, 95))
}
