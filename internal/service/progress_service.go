package service

import (
	"context"
	"time"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

// ChartPoint is one entry of the progress chart payload.
type ChartPoint struct {
	Date       time.Time `json:"date"`
	WeightKG   float64   `json:"weightKg,omitempty"`
	BodyFatPct float64   `json:"bodyFatPct,omitempty"`
}

// ProgressService manages body-progress entries.
type ProgressService interface {
	AddEntry(ctx context.Context, entry *domain.Progress) (*domain.Progress, error)
	GetEntriesByUser(ctx context.Context, userID uint) ([]domain.Progress, error)
	GetChart(ctx context.Context, userID uint) ([]ChartPoint, error)
}

type progressService struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(progressRepo repository.ProgressRepository) ProgressService {
	return &progressService{progressRepo: progressRepo}
}

func (s *progressService) AddEntry(ctx context.Context, entry *domain.Progress) (*domain.Progress, error) {
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	if err := s.progressRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *progressService) GetEntriesByUser(ctx context.Context, userID uint) ([]domain.Progress, error) {
	return s.progressRepo.GetByUserID(ctx, userID)
}

// GetChart reduces the entries to the weight/body-fat series charting
// clients plot, oldest first.
func (s *progressService) GetChart(ctx context.Context, userID uint) ([]ChartPoint, error) {
	entries, err := s.progressRepo.GetChart(ctx, userID)
	if err != nil {
		return nil, err
	}
	points := make([]ChartPoint, len(entries))
	for i, e := range entries {
		points[i] = ChartPoint{
			Date:       e.Date,
			WeightKG:   e.WeightKG,
			BodyFatPct: e.BodyFatPct,
		}
	}
	return points, nil
}
