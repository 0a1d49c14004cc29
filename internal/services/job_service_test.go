package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/jobvista/jobvista-backend/internal/config"
	"github.com/jobvista/jobvista-backend/internal/models"
)

type recordingNotifier struct {
	created []struct {
		userID  uuid.UUID
		message string
		link    string
	}
}

func (n *recordingNotifier) Create(userID uuid.UUID, message, link string) error {
	n.created = append(n.created, struct {
		userID  uuid.UUID
		message string
		link    string
	}{userID, message, link})
	return nil
}

func TestNotifyStatusChangeSelected(t *testing.T) {
	notifier := &recordingNotifier{}
	svc := &JobService{
		cfg:           &config.Config{PublicBaseURL: "http://app.example"},
		notifications: notifier,
	}
	job := &models.Job{ID: uuid.New()}
	user := uuid.New()

	svc.notifyStatusChange(job, user, models.StatusSelected)

	if len(notifier.created) != 1 {
		t.Fatalf("got %d notifications, want exactly 1", len(notifier.created))
	}
	n := notifier.created[0]
	if n.userID != user {
		t.Fatalf("notified %s, want %s", n.userID, user)
	}
	if !strings.Contains(n.message, "upload a video") {
		t.Fatalf("message = %q, want the HR interview instruction", n.message)
	}
	if n.link != "http://app.example/jobs/"+job.ID.String() {
		t.Fatalf("link = %q, want a deep link to the job", n.link)
	}
}

func TestNotifyStatusChangeOtherStatuses(t *testing.T) {
	for _, status := range []models.CandidateStatus{
		models.StatusNone, models.StatusApplied, models.StatusAccepted, models.StatusRejected,
	} {
		notifier := &recordingNotifier{}
		svc := &JobService{
			cfg:           &config.Config{PublicBaseURL: "http://app.example"},
			notifications: notifier,
		}

		svc.notifyStatusChange(&models.Job{ID: uuid.New()}, uuid.New(), status)

		if len(notifier.created) != 0 {
			t.Fatalf("status %s created %d notifications, want 0", status, len(notifier.created))
		}
	}
}

func TestCandidateListUpdatesCoversAllLists(t *testing.T) {
	user := uuid.New()
	job := &models.Job{SelectedUsers: []uuid.UUID{user}}

	// Applying after being hand-placed in selected must persist the removal
	// from selected, not just the addition to applied.
	job.SetCandidateStatus(user, models.StatusApplied)
	updates := candidateListUpdates(job)

	for _, col := range []string{"applied_users", "accepted_users", "rejected_users", "selected_users"} {
		if _, ok := updates[col]; !ok {
			t.Fatalf("updates missing column %s", col)
		}
	}
	if applied := updates["applied_users"].([]uuid.UUID); len(applied) != 1 || applied[0] != user {
		t.Fatalf("applied_users = %v, want [%s]", applied, user)
	}
	if selected := updates["selected_users"].([]uuid.UUID); len(selected) != 0 {
		t.Fatalf("selected_users = %v, want empty", selected)
	}
}

func TestAlreadyDecided(t *testing.T) {
	user := uuid.New()

	cases := []struct {
		name string
		job  *models.Job
		want bool
	}{
		{"accepted", &models.Job{AcceptedUsers: []uuid.UUID{user}}, true},
		{"rejected", &models.Job{RejectedUsers: []uuid.UUID{user}}, true},
		{"applied", &models.Job{AppliedUsers: []uuid.UUID{user}}, false},
		{"selected", &models.Job{SelectedUsers: []uuid.UUID{user}}, false},
		{"unknown user", &models.Job{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := alreadyDecided(tc.job, user); got != tc.want {
				t.Fatalf("alreadyDecided = %v, want %v", got, tc.want)
			}
		})
	}
}
