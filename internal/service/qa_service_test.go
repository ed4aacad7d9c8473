package service

import (
	"errors"
	"testing"

	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"gorm.io/gorm"
)

func newQAService(db *gorm.DB) *QAService {
	return NewQAService(db,
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		NewPointsService(db),
	)
}

func claimsFor(user *model.User) *util.Claims {
	return &util.Claims{UserID: user.ID, Role: user.Role, Email: user.Email}
}

func TestAskQuestionAwardsPoints(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	asker := createTestUser(t, db, "asker", model.RoleUser)

	question, err := svc.CreateQuestion(QuestionInput{
		Title: "How do I calibrate with a hiring manager?",
		Body:  "First search for this role.",
		Tags:  []string{"intake"},
	}, claimsFor(asker))
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if question.Resolved {
		t.Fatal("new question marked resolved")
	}
	if got := userPoints(t, db, asker.ID); got != PointsAskQuestion {
		t.Fatalf("points = %d, want %d", got, PointsAskQuestion)
	}
	if got := ledgerSum(t, db, asker.ID); got != PointsAskQuestion {
		t.Fatalf("ledger = %d, want %d", got, PointsAskQuestion)
	}
}

func TestAnswerMissingQuestionAwardsNothing(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	answerer := createTestUser(t, db, "answerer", model.RoleUser)

	_, err := svc.CreateAnswer("no-such-question", AnswerInput{Body: "try this"}, claimsFor(answerer))
	if !errors.Is(err, util.ErrQuestionNotFound) {
		t.Fatalf("err = %v, want ErrQuestionNotFound", err)
	}
	if got := userPoints(t, db, answerer.ID); got != 0 {
		t.Fatalf("points = %d, want 0", got)
	}
	if got := ledgerSum(t, db, answerer.ID); got != 0 {
		t.Fatalf("ledger = %d, want 0", got)
	}
}

func TestAcceptAnswerResolvesAndAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	asker := createTestUser(t, db, "asker", model.RoleUser)
	answerer := createTestUser(t, db, "answerer", model.RoleUser)

	question, err := svc.CreateQuestion(QuestionInput{Title: "q", Body: "b"}, claimsFor(asker))
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	answer, err := svc.CreateAnswer(question.ID, AnswerInput{Body: "a"}, claimsFor(answerer))
	if err != nil {
		t.Fatalf("create answer: %v", err)
	}

	// A random user cannot accept.
	stranger := createTestUser(t, db, "stranger", model.RoleUser)
	if _, err := svc.AcceptAnswer(answer.ID, claimsFor(stranger)); !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}

	accepted, err := svc.AcceptAnswer(answer.ID, claimsFor(asker))
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if !accepted.IsAccepted {
		t.Fatal("answer not accepted")
	}

	detail, err := svc.Get(question.ID)
	if err != nil {
		t.Fatalf("get question: %v", err)
	}
	if !detail.Resolved {
		t.Fatal("question not resolved after accept")
	}

	wantPoints := PointsAnswerQuestion + PointsAnswerAccepted
	if got := userPoints(t, db, answerer.ID); got != wantPoints {
		t.Fatalf("points = %d, want %d", got, wantPoints)
	}

	// Re-accepting the same answer is idempotent for points.
	if _, err := svc.AcceptAnswer(answer.ID, claimsFor(asker)); err != nil {
		t.Fatalf("re-accept: %v", err)
	}
	if got := userPoints(t, db, answerer.ID); got != wantPoints {
		t.Fatalf("points after re-accept = %d, want %d", got, wantPoints)
	}
}

func TestReacceptMovesFlag(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	asker := createTestUser(t, db, "asker", model.RoleUser)
	first := createTestUser(t, db, "first", model.RoleUser)
	second := createTestUser(t, db, "second", model.RoleUser)

	question, _ := svc.CreateQuestion(QuestionInput{Title: "q", Body: "b"}, claimsFor(asker))
	answerA, _ := svc.CreateAnswer(question.ID, AnswerInput{Body: "a"}, claimsFor(first))
	answerB, _ := svc.CreateAnswer(question.ID, AnswerInput{Body: "b"}, claimsFor(second))

	if _, err := svc.AcceptAnswer(answerA.ID, claimsFor(asker)); err != nil {
		t.Fatalf("accept A: %v", err)
	}
	if _, err := svc.AcceptAnswer(answerB.ID, claimsFor(asker)); err != nil {
		t.Fatalf("accept B: %v", err)
	}

	var count int64
	db.Model(&model.Answer{}).
		Where("question_id = ? AND is_accepted = ?", question.ID, true).
		Count(&count)
	if count != 1 {
		t.Fatalf("accepted answers = %d, want 1", count)
	}

	detail, _ := svc.Get(question.ID)
	if detail.Answers[0].ID != answerB.ID {
		t.Fatalf("accepted answer not sorted first, got %s", detail.Answers[0].ID)
	}
}

func TestUpvoteOncePerUser(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	asker := createTestUser(t, db, "asker", model.RoleUser)
	answerer := createTestUser(t, db, "answerer", model.RoleUser)
	voter := createTestUser(t, db, "voter", model.RoleUser)

	question, _ := svc.CreateQuestion(QuestionInput{Title: "q", Body: "b"}, claimsFor(asker))
	answer, _ := svc.CreateAnswer(question.ID, AnswerInput{Body: "a"}, claimsFor(answerer))

	upvoted, err := svc.UpvoteAnswer(answer.ID, claimsFor(voter))
	if err != nil {
		t.Fatalf("upvote: %v", err)
	}
	if upvoted.Upvotes != 1 {
		t.Fatalf("upvotes = %d, want 1", upvoted.Upvotes)
	}

	if _, err := svc.UpvoteAnswer(answer.ID, claimsFor(voter)); !errors.Is(err, util.ErrAlreadyVoted) {
		t.Fatalf("err = %v, want ErrAlreadyVoted", err)
	}

	var reloaded model.Answer
	db.First(&reloaded, "id = ?", answer.ID)
	if reloaded.Upvotes != 1 {
		t.Fatalf("upvotes after dup vote = %d, want 1", reloaded.Upvotes)
	}

	wantPoints := PointsAnswerQuestion + PointsAnswerUpvoted
	if got := userPoints(t, db, answerer.ID); got != wantPoints {
		t.Fatalf("answerer points = %d, want %d", got, wantPoints)
	}
	if got := userPoints(t, db, voter.ID); got != 0 {
		t.Fatalf("voter points = %d, want 0", got)
	}
}

func TestListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	alice := createTestUser(t, db, "alice", model.RoleUser)
	bob := createTestUser(t, db, "bob", model.RoleUser)

	q1, _ := svc.CreateQuestion(QuestionInput{Title: "open one", Body: "b"}, claimsFor(alice))
	q2, _ := svc.CreateQuestion(QuestionInput{Title: "resolved one", Body: "b"}, claimsFor(bob))
	answer, _ := svc.CreateAnswer(q2.ID, AnswerInput{Body: "a"}, claimsFor(alice))
	if _, err := svc.AcceptAnswer(answer.ID, claimsFor(bob)); err != nil {
		t.Fatalf("accept: %v", err)
	}

	resolved, err := svc.List("resolved", "", nil)
	if err != nil {
		t.Fatalf("list resolved: %v", err)
	}
	if len(resolved) != 1 || resolved[0].ID != q2.ID {
		t.Fatalf("resolved filter returned %d rows", len(resolved))
	}
	if resolved[0].AnswerCount != 1 {
		t.Fatalf("answerCount = %d, want 1", resolved[0].AnswerCount)
	}

	unanswered, err := svc.List("unanswered", "", nil)
	if err != nil {
		t.Fatalf("list unanswered: %v", err)
	}
	if len(unanswered) != 1 || unanswered[0].ID != q1.ID {
		t.Fatalf("unanswered filter returned %d rows", len(unanswered))
	}

	mine, err := svc.List("my-questions", "", claimsFor(alice))
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != q1.ID {
		t.Fatalf("my-questions filter returned %d rows", len(mine))
	}
}

func TestListSearchMatchesTitleAndBody(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	alice := createTestUser(t, db, "alice", model.RoleUser)

	byTitle, _ := svc.CreateQuestion(QuestionInput{Title: "Sourcing on LinkedIn", Body: "b"}, claimsFor(alice))
	byBody, _ := svc.CreateQuestion(QuestionInput{Title: "Tooling", Body: "does sourcing work here"}, claimsFor(alice))
	if _, err := svc.CreateQuestion(QuestionInput{Title: "Offer stage", Body: "negotiation"}, claimsFor(alice)); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := svc.List("all", "sourcing", nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("search returned %d rows, want 2", len(found))
	}
	ids := map[string]bool{found[0].ID: true, found[1].ID: true}
	if !ids[byTitle.ID] || !ids[byBody.ID] {
		t.Fatalf("search missed a title or body match: %v", ids)
	}
}

func TestDeleteQuestionCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newQAService(db)
	asker := createTestUser(t, db, "asker", model.RoleUser)
	answerer := createTestUser(t, db, "answerer", model.RoleUser)
	voter := createTestUser(t, db, "voter", model.RoleUser)

	question, _ := svc.CreateQuestion(QuestionInput{Title: "q", Body: "b"}, claimsFor(asker))
	answer, _ := svc.CreateAnswer(question.ID, AnswerInput{Body: "a"}, claimsFor(answerer))
	if _, err := svc.UpvoteAnswer(answer.ID, claimsFor(voter)); err != nil {
		t.Fatalf("upvote: %v", err)
	}

	if err := svc.DeleteQuestion(question.ID, claimsFor(asker)); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var answers, votes int64
	db.Model(&model.Answer{}).Where("question_id = ?", question.ID).Count(&answers)
	db.Model(&model.AnswerVote{}).Where("answer_id = ?", answer.ID).Count(&votes)
	if answers != 0 || votes != 0 {
		t.Fatalf("cascade left %d answers, %d votes", answers, votes)
	}
}
