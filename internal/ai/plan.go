package ai

import "encoding/json"

// PlanRequest carries the user-supplied generation parameters plus the
// supplementary profile context pulled from the stored user.
type PlanRequest struct {
	Goal             string
	Level            string
	FrequencyPerWeek int // 1-7
	DurationWeeks    int // 1-52
	Equipment        []string
	MinutesPerDay    int // 15-180, 0 = unspecified
	Injuries         string

	// Supplementary context from the user profile.
	UserFitnessLevel string
	UserInjuries     string
}

// GeneratedPlan is the shape requested from the model. Weeks is kept as raw
// JSON: only the top-level title/description are defaulted, the nested
// week/day/exercise structure is stored as returned.
type GeneratedPlan struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Weeks       json.RawMessage `json:"weeks"`
}

// PlanWeek, PlanDay and PlanExercise describe the week structure the fallback
// generator emits (and the structure the prompt asks the model for).
type PlanWeek struct {
	Week int       `json:"week"`
	Days []PlanDay `json:"days"`
}

type PlanDay struct {
	Day       int            `json:"day"` // 1 (Mon) - 7 (Sun)
	RestDay   bool           `json:"restDay"`
	Exercises []PlanExercise `json:"exercises"`
}

type PlanExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"restSeconds,omitempty"`
}
