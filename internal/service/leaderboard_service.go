package service

import (
	"context"
	"encoding/json"
	"time"

	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

const (
	leaderboardCacheKey = "leaderboard:top"
	leaderboardCacheTTL = 60 * time.Second
)

type LeaderboardService struct {
	Users     *repository.UserRepository
	Contents  *repository.ContentRepository
	Progress  *repository.ProgressRepository
	Answers   *repository.AnswerRepository
	Questions *repository.QuestionRepository
	Redis     *redis.Client
}

func NewLeaderboardService(
	users *repository.UserRepository,
	contents *repository.ContentRepository,
	progress *repository.ProgressRepository,
	answers *repository.AnswerRepository,
	questions *repository.QuestionRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		Users:     users,
		Contents:  contents,
		Progress:  progress,
		Answers:   answers,
		Questions: questions,
		Redis:     rdb,
	}
}

type LeaderboardEntry struct {
	Rank              int    `json:"rank"`
	UserID            string `json:"userId"`
	Name              string `json:"name"`
	Image             string `json:"image"`
	Points            int    `json:"points"`
	ContentCreated    int64  `json:"contentCreated"`
	ContentCompleted  int64  `json:"contentCompleted"`
	QuestionsAnswered int64  `json:"questionsAnswered"`
}

type LeaderboardView struct {
	Entries         []LeaderboardEntry `json:"entries"`
	CurrentUserRank int                `json:"currentUserRank,omitempty"`
}

func (s *LeaderboardService) topEntries(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []LeaderboardEntry
			if json.Unmarshal([]byte(cached), &entries) == nil && len(entries) >= limit {
				return entries[:limit], nil
			}
		}
	}

	users, err := s.Users.TopByPoints(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entry := LeaderboardEntry{
			Rank:   i + 1,
			UserID: user.ID,
			Name:   user.Name,
			Image:  user.Image,
			Points: user.Points,
		}

		if entry.ContentCreated, err = s.Contents.CountPublishedByAuthor(user.ID); err != nil {
			return nil, err
		}
		if entry.ContentCompleted, err = s.Progress.CountCompletedByUser(user.ID); err != nil {
			return nil, err
		}
		if entry.QuestionsAnswered, err = s.Answers.CountByAuthor(user.ID); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, payload, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *LeaderboardService) Get(ctx context.Context, limit int, claims *util.Claims) (*LeaderboardView, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	entries, err := s.topEntries(ctx, limit)
	if err != nil {
		return nil, err
	}

	view := LeaderboardView{Entries: entries}

	if claims != nil {
		user, err := s.Users.FindByID(claims.UserID)
		if err == nil {
			rank, err := s.Users.RankByPoints(user.Points)
			if err != nil {
				return nil, err
			}
			view.CurrentUserRank = rank
		}
	}

	return &view, nil
}

// Invalidate drops the cached top list. Called after point-changing actions
// is overkill at this scale; the short TTL covers staleness instead.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.Redis != nil {
		s.Redis.Del(ctx, leaderboardCacheKey)
	}
}
