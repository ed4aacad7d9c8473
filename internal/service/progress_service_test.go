package service

import (
	"errors"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(db, repository.NewContentRepository(db), NewPointsService(db))
}

func boolPtr(b bool) *bool { return &b }

func TestCompleteContentAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	user := createTestUser(t, db, "alice", model.RoleUser)
	content := createTestContent(t, db, user.ID, model.StatusPublished)

	progress, err := svc.Update(user.ID, content.ID, ProgressInput{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !progress.Completed || progress.CompletedAt == nil {
		t.Fatalf("progress not marked complete: %+v", progress)
	}
	if got := userPoints(t, db, user.ID); got != PointsCompleteContent {
		t.Fatalf("points = %d, want %d", got, PointsCompleteContent)
	}

	// Completing again must not double-award.
	if _, err := svc.Update(user.ID, content.ID, ProgressInput{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if got := userPoints(t, db, user.ID); got != PointsCompleteContent {
		t.Fatalf("points after re-complete = %d, want %d", got, PointsCompleteContent)
	}
	if got := ledgerSum(t, db, user.ID); got != PointsCompleteContent {
		t.Fatalf("ledger after re-complete = %d, want %d", got, PointsCompleteContent)
	}
}

func TestUncompleteKeepsCompletedAtAndPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	user := createTestUser(t, db, "bob", model.RoleUser)
	content := createTestContent(t, db, user.ID, model.StatusPublished)

	if _, err := svc.Update(user.ID, content.ID, ProgressInput{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("complete: %v", err)
	}

	progress, err := svc.Update(user.ID, content.ID, ProgressInput{Completed: boolPtr(false)})
	if err != nil {
		t.Fatalf("uncomplete: %v", err)
	}
	if progress.Completed {
		t.Fatal("progress still completed")
	}
	if progress.CompletedAt == nil {
		t.Fatal("completedAt cleared on uncomplete")
	}
	if got := userPoints(t, db, user.ID); got != PointsCompleteContent {
		t.Fatalf("points = %d, want %d", got, PointsCompleteContent)
	}

	// The award fires on every false-to-true transition.
	if _, err := svc.Update(user.ID, content.ID, ProgressInput{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if got := userPoints(t, db, user.ID); got != 2*PointsCompleteContent {
		t.Fatalf("points after re-complete = %d, want %d", got, 2*PointsCompleteContent)
	}
}

func TestChecklistStatePersists(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	user := createTestUser(t, db, "carol", model.RoleUser)
	content := createTestContent(t, db, user.ID, model.StatusPublished)

	state := map[string]interface{}{"step-1": true, "step-2": false}
	progress, err := svc.Update(user.ID, content.ID, ProgressInput{ChecklistState: state})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if progress.Completed {
		t.Fatal("checklist update should not complete the item")
	}
	if v, ok := progress.ChecklistState["step-1"].(bool); !ok || !v {
		t.Fatalf("checklist state = %v", progress.ChecklistState)
	}
	if got := userPoints(t, db, user.ID); got != 0 {
		t.Fatalf("points = %d, want 0", got)
	}
}

func TestProgressOnMissingContent(t *testing.T) {
	db := newTestDB(t)
	svc := newProgressService(db)
	user := createTestUser(t, db, "dave", model.RoleUser)

	_, err := svc.Update(user.ID, "no-such-content", ProgressInput{Completed: boolPtr(true)})
	if !errors.Is(err, util.ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
}
