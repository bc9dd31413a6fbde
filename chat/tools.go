// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import "google.golang.org/genai"

func str(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

func integer(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: desc}
}

func object(required []string, props map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

// Declarations returns the tool surface exposed to the model. Every
// name here must have a case in Executor.Execute.
func Declarations() []*genai.FunctionDeclaration {
	monthProp := integer("Month number (1-12)")
	yearProp := integer("Year (defaults to the currently selected year)")

	return []*genai.FunctionDeclaration{
		{
			Name:        "list_all_inks",
			Description: "List all inks in the collection with brand, name, color tags, and whether each is already assigned for the current year.",
			Parameters:  object(nil, map[string]*genai.Schema{}),
		},
		{
			Name:        "search_inks",
			Description: "Search for inks by name, color tag, or brand. Returns matches with their index numbers and current assignment status.",
			Parameters: object(nil, map[string]*genai.Schema{
				"query": str("Text to search in ink names"),
				"color": str("Color tag to filter by (e.g., \"blue\", \"green\")"),
				"brand": str("Brand name to filter by"),
			}),
		},
		{
			Name:        "get_month_assignments",
			Description: "Get all ink assignments for a specific month, including which dates are protected.",
			Parameters: object([]string{"month"}, map[string]*genai.Schema{
				"month": monthProp,
				"year":  yearProp,
			}),
		},
		{
			Name:        "assign_ink_to_date",
			Description: "Assign a specific ink to a specific date. Will NOT modify dates that already have protected assignments.",
			Parameters: object([]string{"ink_identifier", "date"}, map[string]*genai.Schema{
				"ink_identifier": str("Ink name or brand + name (e.g., \"Diamine Blue\" or \"Blue Velvet\")"),
				"date":           str("Date in YYYY-MM-DD format"),
			}),
		},
		{
			Name:        "bulk_assign_month",
			Description: "Assign multiple inks to the free days of a month, in order. Skips inks that are already assigned elsewhere.",
			Parameters: object([]string{"ink_identifiers", "month"}, map[string]*genai.Schema{
				"ink_identifiers": {
					Type:        genai.TypeArray,
					Items:       str("Ink name"),
					Description: "List of ink names to assign",
				},
				"month": monthProp,
				"year":  yearProp,
			}),
		},
		{
			Name:        "unassign_ink_from_date",
			Description: "Remove a session ink assignment from a specific date. Protected assignments cannot be removed.",
			Parameters: object([]string{"date"}, map[string]*genai.Schema{
				"date": str("Date in YYYY-MM-DD format to clear"),
			}),
		},
		{
			Name:        "move_ink_assignment",
			Description: "Move a session assignment from one date to another. The target date must be empty and neither date may be protected.",
			Parameters: object([]string{"from_date", "to_date"}, map[string]*genai.Schema{
				"from_date": str("Source date in YYYY-MM-DD format"),
				"to_date":   str("Target date in YYYY-MM-DD format"),
			}),
		},
		{
			Name:        "swap_ink_assignments",
			Description: "Swap the inks assigned to two dates. Both dates must be assigned and neither may be protected.",
			Parameters: object([]string{"date_a", "date_b"}, map[string]*genai.Schema{
				"date_a": str("First date in YYYY-MM-DD format"),
				"date_b": str("Second date in YYYY-MM-DD format"),
			}),
		},
		{
			Name:        "clear_month_assignments",
			Description: "Remove all session ink assignments for a month. Protected assignments are left in place and reported.",
			Parameters: object([]string{"month"}, map[string]*genai.Schema{
				"month": monthProp,
				"year":  yearProp,
			}),
		},
		{
			Name:        "get_current_assignments_summary",
			Description: "Get a per-month summary of assigned, protected, and free days for the year.",
			Parameters: object(nil, map[string]*genai.Schema{
				"year": yearProp,
			}),
		},
		{
			Name:        "find_available_inks_for_theme",
			Description: "Find inks that could fill gaps in the schedule: unassigned inks and, optionally, session-assigned inks that could be reshuffled. Protected inks are never returned.",
			Parameters: object(nil, map[string]*genai.Schema{
				"query":                    str("Text to search in ink names or properties (e.g., \"shimmer\", \"sheen\")"),
				"color":                    str("Color tag to filter by"),
				"brand":                    str("Brand name to filter by"),
				"include_session_assigned": {Type: genai.TypeBoolean, Description: "Include inks with session assignments that could be moved (default true)"},
				"limit":                    integer("Maximum number of results to return (default 20)"),
			}),
		},
		{
			Name:        "set_month_theme",
			Description: "Set a theme name and description for a month. Use after filling a month with inks.",
			Parameters: object([]string{"month", "theme"}, map[string]*genai.Schema{
				"month":       monthProp,
				"theme":       str("Short theme name (e.g., \"Winter Blues\", \"Autumn Warmth\")"),
				"description": str("Longer description of the theme"),
				"year":        yearProp,
			}),
		},
		{
			Name:        "get_month_theme",
			Description: "Get the theme currently set for a month, if any.",
			Parameters: object([]string{"month"}, map[string]*genai.Schema{
				"month": monthProp,
				"year":  yearProp,
			}),
		},
		{
			Name:        "clear_month_theme",
			Description: "Remove the theme for a month.",
			Parameters: object([]string{"month"}, map[string]*genai.Schema{
				"month": monthProp,
				"year":  yearProp,
			}),
		},
	}
}
