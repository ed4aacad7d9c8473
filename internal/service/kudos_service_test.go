package service

import (
	"errors"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

func newKudosService(db *gorm.DB) *KudosService {
	return NewKudosService(db,
		repository.NewKudosRepository(db),
		repository.NewUserRepository(db),
		NewPointsService(db),
	)
}

func TestGiveKudosAwardsRecipient(t *testing.T) {
	db := newTestDB(t)
	svc := newKudosService(db)
	sender := createTestUser(t, db, "sender", model.RoleUser)
	recipient := createTestUser(t, db, "recipient", model.RoleUser)

	kudos, err := svc.Give(KudosInput{ToUserID: recipient.ID, Message: "great sourcing work"}, claimsFor(sender))
	if err != nil {
		t.Fatalf("give: %v", err)
	}
	if kudos.FromUserID != sender.ID || kudos.ToUserID != recipient.ID {
		t.Fatalf("kudos routed wrong: %+v", kudos.Kudos)
	}

	if got := userPoints(t, db, recipient.ID); got != PointsReceiveKudos {
		t.Fatalf("recipient points = %d, want %d", got, PointsReceiveKudos)
	}
	if got := userPoints(t, db, sender.ID); got != 0 {
		t.Fatalf("sender points = %d, want 0", got)
	}
	if got := ledgerSum(t, db, sender.ID); got != 0 {
		t.Fatalf("sender ledger = %d, want 0", got)
	}
}

func TestSelfKudosRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newKudosService(db)
	user := createTestUser(t, db, "narcissist", model.RoleUser)

	_, err := svc.Give(KudosInput{ToUserID: user.ID}, claimsFor(user))
	if !errors.Is(err, util.ErrSelfKudos) {
		t.Fatalf("err = %v, want ErrSelfKudos", err)
	}

	var count int64
	db.Model(&model.Kudos{}).Count(&count)
	if count != 0 {
		t.Fatalf("kudos rows = %d, want 0", count)
	}
}

func TestKudosToMissingUser(t *testing.T) {
	db := newTestDB(t)
	svc := newKudosService(db)
	sender := createTestUser(t, db, "sender", model.RoleUser)

	_, err := svc.Give(KudosInput{ToUserID: "no-such-user"}, claimsFor(sender))
	if !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestRecentKudosNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newKudosService(db)
	sender := createTestUser(t, db, "sender", model.RoleUser)
	recipient := createTestUser(t, db, "recipient", model.RoleUser)

	if _, err := svc.Give(KudosInput{ToUserID: recipient.ID, Message: "first"}, claimsFor(sender)); err != nil {
		t.Fatalf("give: %v", err)
	}
	if _, err := svc.Give(KudosInput{ToUserID: sender.ID, Message: "second"}, claimsFor(recipient)); err != nil {
		t.Fatalf("give: %v", err)
	}

	recent, err := svc.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent rows = %d, want 2", len(recent))
	}
	if recent[0].FromUserName == "" {
		t.Fatal("sender name not joined")
	}
}
