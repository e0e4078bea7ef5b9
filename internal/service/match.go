package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/fathima-sithara/campus-connect/internal/matcher"
	"github.com/fathima-sithara/campus-connect/internal/metrics"
	"github.com/fathima-sithara/campus-connect/internal/models"
)

// StudentStore is the matcher's read-only view of profiles.
type StudentStore interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
}

// MatchCache holds ranked results between profile changes. All methods are
// best-effort; a missing or failing cache only costs a recomputation.
type MatchCache interface {
	Get(ctx context.Context, studentID string) ([]matcher.Match, bool)
	Set(ctx context.Context, studentID string, matches []matcher.Match)
	Invalidate(ctx context.Context, studentID string)
}

type MatchService struct {
	students StudentStore
	cache    MatchCache // optional
	group    singleflight.Group
	log      *zap.SugaredLogger
}

func NewMatchService(students StudentStore, cache MatchCache, log *zap.SugaredLogger) *MatchService {
	return &MatchService{students: students, cache: cache, log: log}
}

// Matches ranks the whole student pool against the target and returns
// everyone at or above the threshold, best first. Unknown targets are a
// hard not-found. Concurrent requests for the same student collapse into
// one computation.
func (s *MatchService) Matches(ctx context.Context, studentID string) ([]matcher.Match, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, studentID); ok {
			return cached, nil
		}
	}

	v, err, _ := s.group.Do(studentID, func() (interface{}, error) {
		target, err := s.students.GetByID(ctx, studentID)
		if err != nil {
			return nil, err
		}
		pool, err := s.students.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		ranked := matcher.Rank(target, pool)
		metrics.MatchComputations.Inc()
		if s.cache != nil {
			s.cache.Set(ctx, studentID, ranked)
		}
		return ranked, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]matcher.Match), nil
}

// InvalidateFor drops a student's cached ranking after a profile change.
func (s *MatchService) InvalidateFor(ctx context.Context, studentID string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, studentID)
	}
}
