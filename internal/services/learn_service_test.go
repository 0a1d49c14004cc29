package services

import (
	"testing"

	"github.com/jobvista/jobvista-backend/internal/models"
)

func TestQuizScore(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"all correct", 10, 10, 100},
		{"none correct", 0, 10, 0},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
		{"half", 5, 10, 50},
		{"zero total", 3, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QuizScore(tc.correct, tc.total); got != tc.want {
				t.Fatalf("QuizScore(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
			}
		})
	}
}

func TestTopicCapReached(t *testing.T) {
	const limit = 3

	record := func(topics ...string) *models.LearningRecord {
		r := &models.LearningRecord{}
		for _, topic := range topics {
			r.QuizAttempts = append(r.QuizAttempts, models.QuizAttempt{Topic: topic})
		}
		return r
	}

	cases := []struct {
		name   string
		record *models.LearningRecord
		topic  string
		want   bool
	}{
		{"no attempts", record(), "golang", false},
		{"below cap", record("golang", "golang"), "golang", false},
		{"at cap", record("golang", "golang", "golang"), "golang", true},
		{"other topic does not count", record("sql", "sql", "sql"), "golang", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := topicCapReached(tc.record, tc.topic, limit); got != tc.want {
				t.Fatalf("topicCapReached = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGlobalCapReached(t *testing.T) {
	const limit = 20

	cases := []struct {
		name     string
		attempts int
		want     bool
	}{
		{"fresh record", 0, false},
		{"below cap", 19, false},
		{"at cap", 20, true},
		{"beyond cap", 21, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &models.LearningRecord{
				AttemptCount: tc.attempts,
				QuizAttempts: []models.QuizAttempt{{
					Topic:     "golang",
					Questions: []models.QuizQuestion{{Question: "q1"}},
				}},
			}

			if got := globalCapReached(r, limit); got != tc.want {
				t.Fatalf("globalCapReached(%d) = %v, want %v", tc.attempts, got, tc.want)
			}
			// The gate must leave stored questions alone.
			if len(r.QuizAttempts[0].Questions) != 1 || r.QuizAttempts[0].Questions[0].Question != "q1" {
				t.Fatal("stored questions were altered by the cap check")
			}
		})
	}
}

func TestClassifyLearningType(t *testing.T) {
	const speedMin, mediumMin = 80, 40

	cases := []struct {
		name   string
		points int
		want   string
	}{
		{"well above speed threshold", 95, models.LearningTypeSpeed},
		{"just above speed threshold", 81, models.LearningTypeSpeed},
		{"exactly speed threshold is medium", 80, models.LearningTypeMedium},
		{"exactly medium threshold", 40, models.LearningTypeMedium},
		{"just below medium threshold", 39, models.LearningTypeSlow},
		{"zero", 0, models.LearningTypeSlow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyLearningType(tc.points, speedMin, mediumMin); got != tc.want {
				t.Fatalf("ClassifyLearningType(%d) = %q, want %q", tc.points, got, tc.want)
			}
		})
	}
}
