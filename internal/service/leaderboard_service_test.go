package service

import (
	"context"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"

	"gorm.io/gorm"
)

// Redis is nil in tests; the service reads straight from the database.
func newLeaderboardService(db *gorm.DB) *LeaderboardService {
	return NewLeaderboardService(
		repository.NewUserRepository(db),
		repository.NewContentRepository(db),
		repository.NewProgressRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewQuestionRepository(db),
		nil,
	)
}

func TestLeaderboardOrderAndRank(t *testing.T) {
	db := newTestDB(t)
	svc := newLeaderboardService(db)
	points := NewPointsService(db)

	alice := createTestUser(t, db, "alice", model.RoleUser)
	bob := createTestUser(t, db, "bob", model.RoleUser)
	carol := createTestUser(t, db, "carol", model.RoleUser)

	if err := points.Award(alice.ID, 100, "Completed content", model.RefContent, "c"); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := points.Award(bob.ID, 50, "Completed content", model.RefContent, "c"); err != nil {
		t.Fatalf("award: %v", err)
	}

	view, err := svc.Get(context.Background(), 10, claimsFor(carol))
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if len(view.Entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(view.Entries))
	}
	if view.Entries[0].UserID != alice.ID || view.Entries[0].Rank != 1 {
		t.Fatalf("top entry = %+v", view.Entries[0])
	}
	if view.Entries[1].UserID != bob.ID {
		t.Fatalf("second entry = %+v", view.Entries[1])
	}

	// Carol has 0 points; two users are strictly ahead.
	if view.CurrentUserRank != 3 {
		t.Fatalf("currentUserRank = %d, want 3", view.CurrentUserRank)
	}
}

func TestLeaderboardStats(t *testing.T) {
	db := newTestDB(t)
	svc := newLeaderboardService(db)

	author := createTestUser(t, db, "author", model.RoleUser)
	createTestContent(t, db, author.ID, model.StatusPublished)
	createTestContent(t, db, author.ID, model.StatusDraft)

	content := createTestContent(t, db, author.ID, model.StatusPublished)
	progress := newProgressService(db)
	if _, err := progress.Update(author.ID, content.ID, ProgressInput{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("progress: %v", err)
	}

	view, err := svc.Get(context.Background(), 10, nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	entry := view.Entries[0]
	if entry.ContentCreated != 2 {
		t.Fatalf("contentCreated = %d, want 2 (drafts excluded)", entry.ContentCreated)
	}
	if entry.ContentCompleted != 1 {
		t.Fatalf("contentCompleted = %d, want 1", entry.ContentCompleted)
	}
	if view.CurrentUserRank != 0 {
		t.Fatalf("anonymous caller got rank %d", view.CurrentUserRank)
	}
}
