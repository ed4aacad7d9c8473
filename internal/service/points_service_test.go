package service

import (
	"testing"

	"recruiter_hub_backend/internal/model"
)

func TestAwardKeepsLedgerAndCounterInSync(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createTestUser(t, db, "alice", model.RoleUser)

	if err := points.Award(user.ID, 50, "Completed content", model.RefContent, "c1"); err != nil {
		t.Fatalf("award: %v", err)
	}
	if err := points.Award(user.ID, 10, "Asked a question", model.RefQuestion, "q1"); err != nil {
		t.Fatalf("award: %v", err)
	}

	if got := userPoints(t, db, user.ID); got != 60 {
		t.Fatalf("points = %d, want 60", got)
	}
	if got := ledgerSum(t, db, user.ID); got != 60 {
		t.Fatalf("ledger sum = %d, want 60", got)
	}

	var count int64
	db.Model(&model.PointTransaction{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 2 {
		t.Fatalf("ledger rows = %d, want 2", count)
	}
}

func TestAwardRecordsReference(t *testing.T) {
	db := newTestDB(t)
	points := NewPointsService(db)
	user := createTestUser(t, db, "bob", model.RoleUser)

	if err := points.Award(user.ID, 15, "Received kudos", model.RefKudos, "k1"); err != nil {
		t.Fatalf("award: %v", err)
	}

	var entry model.PointTransaction
	if err := db.First(&entry, "user_id = ?", user.ID).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.ReferenceType != model.RefKudos || entry.ReferenceID != "k1" {
		t.Fatalf("reference = %s/%s, want kudos/k1", entry.ReferenceType, entry.ReferenceID)
	}
	if entry.Reason != "Received kudos" {
		t.Fatalf("reason = %q", entry.Reason)
	}
}
