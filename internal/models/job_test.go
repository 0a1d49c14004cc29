package models

import (
	"testing"

	"github.com/google/uuid"
)

func membershipCount(j *Job, id uuid.UUID) int {
	n := 0
	for _, list := range [][]uuid.UUID{j.AppliedUsers, j.AcceptedUsers, j.RejectedUsers, j.SelectedUsers} {
		if containsID(list, id) {
			n++
		}
	}
	return n
}

func TestSetCandidateStatusDisjointLists(t *testing.T) {
	user := uuid.New()
	other := uuid.New()

	cases := []struct {
		name   string
		prep   func(j *Job)
		target CandidateStatus
		want   int
	}{
		{"applied to selected", func(j *Job) { j.AppliedUsers = []uuid.UUID{user} }, StatusSelected, 1},
		{"selected to accepted", func(j *Job) { j.SelectedUsers = []uuid.UUID{user} }, StatusAccepted, 1},
		{"accepted to rejected", func(j *Job) { j.AcceptedUsers = []uuid.UUID{user} }, StatusRejected, 1},
		{"rejected to none", func(j *Job) { j.RejectedUsers = []uuid.UUID{user} }, StatusNone, 0},
		{"fresh apply", func(j *Job) {}, StatusApplied, 1},
		{"duplicated across lists is repaired", func(j *Job) {
			j.AppliedUsers = []uuid.UUID{user}
			j.SelectedUsers = []uuid.UUID{user}
		}, StatusAccepted, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			j := &Job{AppliedUsers: []uuid.UUID{other}}
			tc.prep(j)

			j.SetCandidateStatus(user, tc.target)

			if got := membershipCount(j, user); got != tc.want {
				t.Fatalf("user is in %d lists, want %d", got, tc.want)
			}
			if tc.want == 1 && j.CandidateStatusOf(user) != tc.target {
				t.Fatalf("status = %s, want %s", j.CandidateStatusOf(user), tc.target)
			}
			if !containsID(j.AppliedUsers, other) {
				t.Fatalf("other applicant was disturbed")
			}
		})
	}
}

func TestSetCandidateStatusIdempotent(t *testing.T) {
	user := uuid.New()
	j := &Job{AppliedUsers: []uuid.UUID{user}}

	j.SetCandidateStatus(user, StatusSelected)
	first := append([]uuid.UUID(nil), j.SelectedUsers...)

	j.SetCandidateStatus(user, StatusSelected)

	if len(j.SelectedUsers) != len(first) {
		t.Fatalf("second call changed selected list: %d -> %d", len(first), len(j.SelectedUsers))
	}
	if len(j.AppliedUsers) != 0 {
		t.Fatalf("applied list not emptied")
	}
	if membershipCount(j, user) != 1 {
		t.Fatalf("user is in %d lists, want 1", membershipCount(j, user))
	}
}

func TestSetCandidateStatusMovesOutOfApplied(t *testing.T) {
	u1 := uuid.New()
	j := &Job{AppliedUsers: []uuid.UUID{u1}}

	j.SetCandidateStatus(u1, StatusSelected)

	if len(j.AppliedUsers) != 0 {
		t.Fatalf("appliedUsers = %v, want empty", j.AppliedUsers)
	}
	if len(j.SelectedUsers) != 1 || j.SelectedUsers[0] != u1 {
		t.Fatalf("selectedUsers = %v, want [%s]", j.SelectedUsers, u1)
	}
}

func TestValidCandidateStatus(t *testing.T) {
	for _, s := range []CandidateStatus{StatusNone, StatusApplied, StatusSelected, StatusAccepted, StatusRejected} {
		if !ValidCandidateStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidCandidateStatus("hired") {
		t.Errorf("unknown status should be invalid")
	}
}
