package models

import "testing"

func TestTopicAttempts(t *testing.T) {
	r := &LearningRecord{QuizAttempts: []QuizAttempt{
		{Topic: "golang"},
		{Topic: "sql"},
		{Topic: "golang"},
	}}

	if got := r.TopicAttempts("golang"); got != 2 {
		t.Fatalf("TopicAttempts(golang) = %d, want 2", got)
	}
	if got := r.TopicAttempts("rust"); got != 0 {
		t.Fatalf("TopicAttempts(rust) = %d, want 0", got)
	}
}

func TestLatestAttempt(t *testing.T) {
	r := &LearningRecord{}
	if r.LatestAttempt() != nil {
		t.Fatal("empty record should have no latest attempt")
	}

	r.QuizAttempts = []QuizAttempt{{Topic: "first"}, {Topic: "second"}}
	latest := r.LatestAttempt()
	if latest == nil || latest.Topic != "second" {
		t.Fatalf("latest = %+v, want the second attempt", latest)
	}

	// The pointer aliases the stored slice so callers can mutate in place.
	latest.Score = 80
	if r.QuizAttempts[1].Score != 80 {
		t.Fatal("mutation through LatestAttempt did not stick")
	}
}
