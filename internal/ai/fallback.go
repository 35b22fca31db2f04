package ai

import (
	"encoding/json"
	"fmt"
)

// The fixed bodyweight rotation used when no AI backend is available.
var bodyweightExercises = []PlanExercise{
	{Name: "Push-ups", Sets: 3, Reps: "10-15", RestSeconds: 60},
	{Name: "Bodyweight Squats", Sets: 3, Reps: "15-20", RestSeconds: 60},
	{Name: "Lunges", Sets: 3, Reps: "10 per leg", RestSeconds: 60},
	{Name: "Plank", Sets: 3, Reps: "30-60 seconds", RestSeconds: 45},
	{Name: "Mountain Climbers", Sets: 3, Reps: "20 per side", RestSeconds: 45},
	{Name: "Burpees", Sets: 3, Reps: "8-12", RestSeconds: 90},
}

var goalTitles = map[string]string{
	"weight_loss":     "Weight Loss Kickstart",
	"muscle_gain":     "Muscle Building Basics",
	"endurance":       "Endurance Builder",
	"flexibility":     "Mobility & Flexibility",
	"general_fitness": "General Fitness Routine",
}

// FallbackPlan builds the deterministic template plan: for each week, days
// beyond the requested frequency are rest days, and training days rotate
// through two fixed subsets of the bodyweight list. The subset length varies
// with week parity (4 + week mod 2 exercises per day, clipped).
func FallbackPlan(req PlanRequest) *GeneratedPlan {
	subsetA := bodyweightExercises[:5]                          // push-focused rotation
	subsetB := bodyweightExercises[1:]                          // legs/core-focused rotation
	title, ok := goalTitles[req.Goal]
	if !ok {
		title = "Personalized Workout Plan"
	}

	weeks := make([]PlanWeek, 0, req.DurationWeeks)
	for week := 1; week <= req.DurationWeeks; week++ {
		days := make([]PlanDay, 0, 7)
		for day := 1; day <= 7; day++ {
			if day > req.FrequencyPerWeek {
				days = append(days, PlanDay{Day: day, RestDay: true, Exercises: []PlanExercise{}})
				continue
			}

			subset := subsetA
			if day%2 == 0 {
				subset = subsetB
			}
			count := 4 + week%2
			if count > len(subset) {
				count = len(subset)
			}
			exercises := make([]PlanExercise, count)
			copy(exercises, subset[:count])

			days = append(days, PlanDay{Day: day, RestDay: false, Exercises: exercises})
		}
		weeks = append(weeks, PlanWeek{Week: week, Days: days})
	}

	// The week structure is built in-process, so marshalling cannot fail.
	raw, _ := json.Marshal(weeks)

	return &GeneratedPlan{
		Title: title,
		Description: fmt.Sprintf(
			"A %d-week %s plan with %d bodyweight sessions per week, suited for a %s level.",
			req.DurationWeeks, req.Goal, req.FrequencyPerWeek, req.Level,
		),
		Weeks: raw,
	}
}
