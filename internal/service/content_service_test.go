package service

import (
	"errors"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

func newContentService(db *gorm.DB) *ContentService {
	return NewContentService(repository.NewContentRepository(db), repository.NewProgressRepository(db))
}

func TestListDefaultsToPublished(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	createTestContent(t, db, author.ID, model.StatusPublished)
	createTestContent(t, db, author.ID, model.StatusDraft)
	createTestContent(t, db, author.ID, model.StatusPending)

	items, err := svc.List(ContentListQuery{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Status != model.StatusPublished {
		t.Fatalf("status = %s, want published", items[0].Status)
	}
}

func TestListExplicitStatusHonored(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	createTestContent(t, db, author.ID, model.StatusPublished)
	createTestContent(t, db, author.ID, model.StatusDraft)
	createTestContent(t, db, author.ID, model.StatusPending)

	drafts, err := svc.List(ContentListQuery{Status: "draft"})
	if err != nil {
		t.Fatalf("list drafts: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Status != model.StatusDraft {
		t.Fatalf("draft filter returned %d items", len(drafts))
	}

	all, err := svc.List(ContentListQuery{Status: "all"})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("status all returned %d items, want 3", len(all))
	}
}

func TestNonAdminSubmissionGoesToReview(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	item, err := svc.Create(ContentInput{
		Title: "Offer scripts",
		Type:  string(model.ContentDocument),
		Tags:  []string{"offers"},
	}, claimsFor(author))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != model.StatusPending {
		t.Fatalf("status = %s, want pending", item.Status)
	}
	if item.PublishedAt != nil {
		t.Fatal("publishedAt set on unpublished item")
	}
}

func TestAdminCreatePublishesImmediately(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	admin := createTestUser(t, db, "admin", model.RoleAdmin)

	item, err := svc.Create(ContentInput{
		Title: "Interview rubric",
		Type:  string(model.ContentDocument),
	}, claimsFor(admin))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.Status != model.StatusPublished {
		t.Fatalf("status = %s, want published", item.Status)
	}
	if item.PublishedAt == nil {
		t.Fatal("publishedAt not stamped on admin create")
	}
}

func TestAdminPublishStampsPublishedAtOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)
	admin := createTestUser(t, db, "admin", model.RoleAdmin)

	item := createTestContent(t, db, author.ID, model.StatusDraft)

	published := string(model.StatusPublished)
	updated, err := svc.Update(item.ID, ContentUpdateInput{Status: &published}, claimsFor(admin))
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if updated.Status != model.StatusPublished || updated.PublishedAt == nil {
		t.Fatalf("publish did not stamp: %+v", updated.Content)
	}
	firstStamp := *updated.PublishedAt

	// Unpublish and republish: the original timestamp survives.
	draft := string(model.StatusDraft)
	if _, err := svc.Update(item.ID, ContentUpdateInput{Status: &draft}, claimsFor(admin)); err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	republished, err := svc.Update(item.ID, ContentUpdateInput{Status: &published}, claimsFor(admin))
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if !republished.PublishedAt.Equal(firstStamp) {
		t.Fatalf("publishedAt moved from %v to %v", firstStamp, republished.PublishedAt)
	}
}

func TestNonAdminCannotChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	item := createTestContent(t, db, author.ID, model.StatusDraft)

	published := string(model.StatusPublished)
	updated, err := svc.Update(item.ID, ContentUpdateInput{Status: &published}, claimsFor(author))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != model.StatusDraft {
		t.Fatalf("status = %s, non-admin changed it", updated.Status)
	}
}

func TestUpdateByStrangerForbidden(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)
	stranger := createTestUser(t, db, "stranger", model.RoleUser)

	item := createTestContent(t, db, author.ID, model.StatusPublished)

	title := "hijacked"
	_, err := svc.Update(item.ID, ContentUpdateInput{Title: &title}, claimsFor(stranger))
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func TestBodyEditKeepsVersion(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	item := createTestContent(t, db, author.ID, model.StatusPublished)

	body := "# updated"
	updated, err := svc.Update(item.ID, ContentUpdateInput{Body: &body}, claimsFor(author))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Body != body {
		t.Fatalf("body = %q, not updated", updated.Body)
	}
	if updated.Version != 1 {
		t.Fatalf("version = %d, want 1", updated.Version)
	}
}

func TestDraftHiddenFromOthers(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)
	stranger := createTestUser(t, db, "stranger", model.RoleUser)

	item := createTestContent(t, db, author.ID, model.StatusDraft)

	if _, err := svc.Get(item.ID, claimsFor(stranger)); !errors.Is(err, util.ErrContentNotFound) {
		t.Fatalf("err = %v, want ErrContentNotFound", err)
	}
	if _, err := svc.Get(item.ID, claimsFor(author)); err != nil {
		t.Fatalf("author blocked from own draft: %v", err)
	}
}

func TestDeleteCascadesProgressAndPathItems(t *testing.T) {
	db := newTestDB(t)
	svc := newContentService(db)
	author := createTestUser(t, db, "author", model.RoleUser)

	item := createTestContent(t, db, author.ID, model.StatusPublished)

	progress := newProgressService(db)
	if _, err := progress.Update(author.ID, item.ID, ProgressInput{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("progress: %v", err)
	}

	path := model.LearningPath{Title: "Onboarding"}
	if err := db.Create(&path).Error; err != nil {
		t.Fatalf("create path: %v", err)
	}
	pathItem := model.LearningPathItem{ID: model.GenerateUUID(), PathID: path.ID, ContentID: item.ID}
	if err := db.Create(&pathItem).Error; err != nil {
		t.Fatalf("create path item: %v", err)
	}

	if err := svc.Delete(item.ID, claimsFor(author)); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var progressCount, itemCount int64
	db.Model(&model.ContentProgress{}).Where("content_id = ?", item.ID).Count(&progressCount)
	db.Model(&model.LearningPathItem{}).Where("content_id = ?", item.ID).Count(&itemCount)
	if progressCount != 0 || itemCount != 0 {
		t.Fatalf("cascade left %d progress rows, %d path items", progressCount, itemCount)
	}
}
