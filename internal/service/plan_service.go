package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"fitforge/fitness-app/internal/ai"
	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/repository"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanDisclaimer is attached to every generated plan.
const PlanDisclaimer = "This workout plan was generated automatically and is not medical advice. Consult a physician before starting a new exercise program."

// PlanService manages workout plans, including AI-assisted generation.
type PlanService interface {
	CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	GetPlanByID(ctx context.Context, id uint) (*domain.Plan, error)
	GetPlansByUser(ctx context.Context, userID uint) ([]domain.Plan, error)
	UpdatePlan(ctx context.Context, plan *domain.Plan) error
	DeletePlan(ctx context.Context, id uint) error
	GeneratePlan(ctx context.Context, user *domain.User, req ai.PlanRequest) (*domain.Plan, error)
}

type planService struct {
	planRepo repository.PlanRepository
	aiClient *ai.Client // nil when no API key is configured
	log      *logrus.Entry
}

// NewPlanService creates a new instance of planService. A nil aiClient means
// every generation request uses the deterministic fallback.
func NewPlanService(planRepo repository.PlanRepository, aiClient *ai.Client) PlanService {
	return &planService{
		planRepo: planRepo,
		aiClient: aiClient,
		log:      logrus.WithField("component", "plan_service"),
	}
}

func (s *planService) CreatePlan(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	if plan.Status == "" {
		plan.Status = domain.PlanStatusActive
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetPlanByID(ctx context.Context, id uint) (*domain.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *planService) GetPlansByUser(ctx context.Context, userID uint) ([]domain.Plan, error) {
	return s.planRepo.GetByUserID(ctx, userID)
}

func (s *planService) UpdatePlan(ctx context.Context, plan *domain.Plan) error {
	return s.planRepo.Update(ctx, plan)
}

func (s *planService) DeletePlan(ctx context.Context, id uint) error {
	err := s.planRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanNotFound
	}
	return err
}

// GeneratePlan produces and stores a plan for the user. With an API key
// configured the chat model is asked first; any failure there (network,
// non-2xx, unparseable JSON) is logged and silently replaced by the template
// generator. The generatedByAI flag records whether a key was configured,
// not which path actually produced the plan.
func (s *planService) GeneratePlan(ctx context.Context, user *domain.User, req ai.PlanRequest) (*domain.Plan, error) {
	req.UserFitnessLevel = user.FitnessLevel
	req.UserInjuries = user.Injuries

	var generated *ai.GeneratedPlan
	if s.aiClient != nil {
		prompt := ai.BuildPrompt(req)
		result, err := s.aiClient.GeneratePlan(ctx, prompt)
		if err != nil {
			s.log.WithError(err).Warn("AI generation failed, using fallback plan")
			generated = ai.FallbackPlan(req)
		} else {
			generated = result
		}
	} else {
		generated = ai.FallbackPlan(req)
	}

	// Top-level defaulting only; the weeks payload is stored as returned.
	if strings.TrimSpace(generated.Title) == "" {
		generated.Title = fmt.Sprintf("%d-Week %s Plan", req.DurationWeeks, titleCase(req.Goal))
	}
	if strings.TrimSpace(generated.Description) == "" {
		generated.Description = fmt.Sprintf("A %s plan for a %s level, %d sessions per week.", req.Goal, req.Level, req.FrequencyPerWeek)
	}

	body, err := json.Marshal(map[string]json.RawMessage{"weeks": generated.Weeks})
	if err != nil {
		return nil, err
	}

	plan := &domain.Plan{
		UserID:           user.ID,
		Title:            generated.Title,
		Description:      generated.Description,
		Goal:             req.Goal,
		Level:            req.Level,
		FrequencyPerWeek: req.FrequencyPerWeek,
		DurationWeeks:    req.DurationWeeks,
		Status:           domain.PlanStatusActive,
		Body:             body,
		GeneratedByAI:    s.aiClient != nil,
		Disclaimer:       PlanDisclaimer,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// titleCase turns "weight_loss" into "Weight Loss".
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Fitness"
	}
	return strings.Join(words, " ")
}
