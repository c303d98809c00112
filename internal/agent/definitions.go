package agent

import "calendar-booking-agent/pkg/gemini"

// Definitions returns the function declarations advertised to the model,
// one per supported operation.
func Definitions() []gemini.Tool {
	return []gemini.Tool{
		{
			Name:        OpFindNextSlot,
			Description: "Finds the very next available time slot starting from right now. Use this for general queries like 'When are you free next?' or 'Find me the soonest opening'.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"duration_minutes": map[string]interface{}{
						"type":        "integer",
						"description": "The required duration of the meeting in minutes. Defaults to 60.",
					},
				},
			},
		},
		{
			Name:        OpSuggestSlots,
			Description: "Suggests available time slots for a specific given date. Use this when the user asks for availability on a particular day (e.g., 'tomorrow', 'July 5th').",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"date": map[string]interface{}{
						"type":        "string",
						"description": "The desired date in natural language (e.g., 'tomorrow', 'next Friday', 'July 5th').",
					},
					"duration_minutes": map[string]interface{}{
						"type":        "integer",
						"description": "The duration of the meeting in minutes. Defaults to 60.",
					},
				},
				"required": []string{"date"},
			},
		},
		{
			Name:        OpBookOnce,
			Description: "Books an appointment in the calendar after all details are confirmed. Only use this when you have the title, start time, and duration confirmed by the user.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title": map[string]interface{}{
						"type":        "string",
						"description": "The title or subject of the appointment.",
					},
					"start_time": map[string]interface{}{
						"type":        "string",
						"description": "The start time in natural language (e.g., 'tomorrow at 3 PM', 'next Monday at 10am').",
					},
					"duration_minutes": map[string]interface{}{
						"type":        "integer",
						"description": "The duration of the meeting in minutes. Defaults to 60.",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "An optional description for the appointment.",
					},
				},
				"required": []string{"title", "start_time"},
			},
		},
		{
			Name:        OpBookRecurring,
			Description: "Books recurring appointments in the calendar for specific weekdays until an end date. Use this when the user wants regular appointments on specific days of the week.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"title": map[string]interface{}{
						"type":        "string",
						"description": "The title or subject of the recurring appointment.",
					},
					"weekdays": map[string]interface{}{
						"type":        "string",
						"description": "Comma-separated list of weekdays (e.g., 'tuesday,thursday,friday' or 'mon,wed,fri').",
					},
					"start_time": map[string]interface{}{
						"type":        "string",
						"description": "The start time in HH:MM format (e.g., '16:15' or '14:30').",
					},
					"end_time": map[string]interface{}{
						"type":        "string",
						"description": "The end time in HH:MM format (e.g., '18:00' or '15:30').",
					},
					"end_date": map[string]interface{}{
						"type":        "string",
						"description": "The end date in natural language (e.g., 'July 11th', '2025-07-11').",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "An optional description for the appointments.",
					},
				},
				"required": []string{"title", "weekdays", "start_time", "end_time", "end_date"},
			},
		},
		{
			Name:        OpValidateSetup,
			Description: "Validates that the calendar is accessible. Use this when the user wants to check their calendar setup or reports access problems.",
			Parameters: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"calendar_id": map[string]interface{}{
						"type":        "string",
						"description": "The calendar ID to validate. Defaults to the calendar configured for this session.",
					},
				},
			},
		},
	}
}
