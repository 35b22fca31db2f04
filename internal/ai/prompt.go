package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the single natural-language prompt sent to the chat
// model. All request parameters and the user's stored profile context are
// embedded; the model is instructed to answer with one JSON object only.
func BuildPrompt(req PlanRequest) string {
	var sb strings.Builder

	sb.WriteString("Create a personalized workout plan with these parameters:\n")
	sb.WriteString(fmt.Sprintf("- Goal: %s\n", req.Goal))
	sb.WriteString(fmt.Sprintf("- Fitness level: %s\n", req.Level))
	sb.WriteString(fmt.Sprintf("- Training days per week: %d\n", req.FrequencyPerWeek))
	sb.WriteString(fmt.Sprintf("- Plan length: %d weeks\n", req.DurationWeeks))
	if len(req.Equipment) > 0 {
		sb.WriteString(fmt.Sprintf("- Available equipment: %s\n", strings.Join(req.Equipment, ", ")))
	} else {
		sb.WriteString("- Available equipment: bodyweight only\n")
	}
	if req.MinutesPerDay > 0 {
		sb.WriteString(fmt.Sprintf("- Session length: about %d minutes\n", req.MinutesPerDay))
	}
	if req.Injuries != "" {
		sb.WriteString(fmt.Sprintf("- Injuries or limitations to work around: %s\n", req.Injuries))
	}

	if req.UserFitnessLevel != "" || req.UserInjuries != "" {
		sb.WriteString("\nAdditional context from the user's profile:\n")
		if req.UserFitnessLevel != "" {
			sb.WriteString(fmt.Sprintf("- Self-reported fitness level: %s\n", req.UserFitnessLevel))
		}
		if req.UserInjuries != "" {
			sb.WriteString(fmt.Sprintf("- Known injuries: %s\n", req.UserInjuries))
		}
	}

	sb.WriteString(fmt.Sprintf("\nEvery week must contain exactly 7 day entries (day 1 = Monday). Mark %d days per week as training days and the rest as rest days.\n", req.FrequencyPerWeek))

	sb.WriteString("\nReturn ONLY JSON with this schema:\n")
	sb.WriteString(`{
  "title": "string",
  "description": "string",
  "weeks": [
    {
      "week": number,
      "days": [
        {
          "day": number,
          "restDay": boolean,
          "exercises": [
            {"name":"string","sets":number,"reps":"string","restSeconds":number}
          ]
        }
      ]
    }
  ]
}` + "\n")

	return sb.String()
}
