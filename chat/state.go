// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
)

// State is the mutable planning state a chat turn runs against. Tools
// mutate the session tier of Board and the Themes map; the API tier is
// never written. The caller snapshots state before a turn and persists
// the session tier afterwards.
type State struct {
	Inks   []models.Ink
	Year   int
	Board  schedule.Board
	Themes map[string]models.MonthTheme // keyed "YYYY-MM"
}

// Executor dispatches tool calls by name against a State.
type Executor struct {
	state *State
}

func NewExecutor(state *State) *Executor {
	if state.Themes == nil {
		state.Themes = map[string]models.MonthTheme{}
	}
	return &Executor{state: state}
}

// Execute runs one tool call and returns its result map. Unknown tool
// names get an error result rather than a Go error: the model should
// see the failure and recover.
func (e *Executor) Execute(name string, args map[string]any) map[string]any {
	switch name {
	case "list_all_inks":
		return e.listAllInks()
	case "search_inks":
		return e.searchInks(args)
	case "get_month_assignments":
		return e.getMonthAssignments(args)
	case "assign_ink_to_date":
		return e.assignInkToDate(args)
	case "bulk_assign_month":
		return e.bulkAssignMonth(args)
	case "unassign_ink_from_date":
		return e.unassignInkFromDate(args)
	case "move_ink_assignment":
		return e.moveInkAssignment(args)
	case "swap_ink_assignments":
		return e.swapInkAssignments(args)
	case "clear_month_assignments":
		return e.clearMonthAssignments(args)
	case "get_current_assignments_summary":
		return e.assignmentsSummary(args)
	case "find_available_inks_for_theme":
		return e.findAvailableInks(args)
	case "set_month_theme":
		return e.setMonthTheme(args)
	case "get_month_theme":
		return e.getMonthTheme(args)
	case "clear_month_theme":
		return e.clearMonthTheme(args)
	default:
		return fail("Unknown tool: " + name)
	}
}

func fail(msg string) map[string]any {
	return map[string]any{"success": false, "message": msg}
}

func monthName(m int) string {
	return time.Month(m).String()
}

// argString and argInt tolerate the loose typing of model-produced
// arguments: numbers arrive as float64, ints sometimes as strings.
func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func argInt(args map[string]any, key string) (int, bool) {
	switch v := args[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, true
		}
	}
	return 0, false
}

func argBool(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

func argStrings(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// yearArg resolves an optional year argument to the planning year.
func (e *Executor) yearArg(args map[string]any) int {
	if y, ok := argInt(args, "year"); ok && y > 0 {
		return y
	}
	return e.state.Year
}

func inkInfo(ink models.Ink, idx int) map[string]any {
	return map[string]any{
		"index":            idx,
		"brand":            ink.BrandName,
		"name":             ink.Name,
		"line_name":        ink.LineName,
		"color":            ink.Color,
		"ink_cluster_tags": ink.ClusterTags,
		"kind":             ink.Kind,
		"comment":          ink.Comment,
	}
}

func (e *Executor) listAllInks() map[string]any {
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}
	assigned := e.state.Board.AssignedIndices()

	list := make([]map[string]any, 0, len(e.state.Inks))
	for idx, ink := range e.state.Inks {
		info := inkInfo(ink, idx)
		info["already_assigned"] = assigned[idx]
		list = append(list, info)
	}
	return map[string]any{
		"success":    true,
		"total_inks": len(e.state.Inks),
		"inks":       list,
	}
}

func (e *Executor) searchInks(args map[string]any) map[string]any {
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}
	matches := schedule.SearchInks(e.state.Inks,
		argString(args, "query"), argString(args, "color"), argString(args, "brand"))
	assigned := e.state.Board.AssignedIndices()

	list := make([]map[string]any, 0, len(matches))
	for _, m := range matches {
		info := inkInfo(m.Ink, m.Index)
		info["already_assigned"] = assigned[m.Index]
		list = append(list, info)
	}
	return map[string]any{
		"success":       true,
		"matches_found": len(list),
		"matches":       list,
	}
}

func (e *Executor) getMonthAssignments(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}

	merged := e.state.Board.Merged()
	prefix := fmt.Sprintf("%d-%02d-", year, month)
	days := schedule.DaysInMonth(year, month)

	var assignments []map[string]any
	for date, idx := range merged {
		if !strings.HasPrefix(date, prefix) || idx >= len(e.state.Inks) {
			continue
		}
		ink := e.state.Inks[idx]
		var day int
		fmt.Sscanf(date[len(prefix):], "%d", &day)
		_, protected := e.state.Board.API[date]
		assignments = append(assignments, map[string]any{
			"date":      date,
			"day":       day,
			"ink_index": idx,
			"brand":     ink.BrandName,
			"name":      ink.Name,
			"protected": protected,
		})
	}
	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i]["day"].(int) < assignments[j]["day"].(int)
	})

	return map[string]any{
		"success":         true,
		"month":           month,
		"month_name":      monthName(month),
		"year":            year,
		"days_in_month":   days,
		"assigned_days":   len(assignments),
		"unassigned_days": days - len(assignments),
		"assignments":     assignments,
	}
}

func (e *Executor) assignInkToDate(args map[string]any) map[string]any {
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}
	ident := argString(args, "ink_identifier")
	idx, ok := schedule.FindInkByName(ident, e.state.Inks)
	if !ok {
		return fail(fmt.Sprintf("Could not find ink matching '%s'.", ident))
	}
	date := argString(args, "date")

	session, result := schedule.Move(e.state.Board,
		schedule.MoveOp{ToDate: date, InkIndex: idx}, e.state.Inks)
	if !result.Success {
		return result.ToMap()
	}
	e.state.Board.Session = session

	ink := e.state.Inks[idx]
	return map[string]any{
		"success":   true,
		"message":   fmt.Sprintf("Assigned '%s %s' to %s", ink.BrandName, ink.Name, date),
		"ink_index": idx,
		"date":      date,
		"note":      "This is a session assignment. Use Save Session to persist.",
	}
}

func (e *Executor) bulkAssignMonth(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}
	idents := argStrings(args, "ink_identifiers")

	merged := e.state.Board.Merged()
	prefix := fmt.Sprintf("%d-%02d-", year, month)
	occupied := map[int]bool{}
	for date := range merged {
		if strings.HasPrefix(date, prefix) {
			var day int
			fmt.Sscanf(date[len(prefix):], "%d", &day)
			occupied[day] = true
		}
	}
	var available []int
	for d := 1; d <= schedule.DaysInMonth(year, month); d++ {
		if !occupied[d] {
			available = append(available, d)
		}
	}
	if len(idents) > len(available) {
		return map[string]any{
			"success":        false,
			"message":        fmt.Sprintf("Not enough days. Need %d, only %d available.", len(idents), len(available)),
			"available_days": len(available),
		}
	}

	var successful, failed, alreadyAssigned []map[string]any
	session := make(schedule.Assignment, len(e.state.Board.Session))
	for k, v := range e.state.Board.Session {
		session[k] = v
	}
	assigned := e.state.Board.AssignedIndices()

	for i, ident := range idents {
		if i >= len(available) {
			break
		}
		idx, ok := schedule.FindInkByName(ident, e.state.Inks)
		if !ok {
			failed = append(failed, map[string]any{
				"ink_identifier": ident, "reason": "Ink not found",
			})
			continue
		}
		ink := e.state.Inks[idx]
		if assigned[idx] {
			alreadyAssigned = append(alreadyAssigned, map[string]any{
				"ink_identifier": ident, "ink_index": idx,
				"brand": ink.BrandName, "name": ink.Name,
			})
			continue
		}
		day := available[i]
		date := fmt.Sprintf("%s%02d", prefix, day)
		session[date] = idx
		assigned[idx] = true
		successful = append(successful, map[string]any{
			"ink_index": idx, "brand": ink.BrandName, "name": ink.Name,
			"date": date, "day": day,
		})
	}
	if len(successful) > 0 {
		e.state.Board.Session = session
	}

	return map[string]any{
		"success":                len(successful) > 0,
		"message":                fmt.Sprintf("Bulk assignment to %s %d complete", monthName(month), year),
		"month":                  month,
		"month_name":             monthName(month),
		"year":                   year,
		"successful_assignments": len(successful),
		"failed_assignments":     len(failed),
		"already_assigned_inks":  len(alreadyAssigned),
		"successful":             successful,
		"failed":                 failed,
		"already_assigned":       alreadyAssigned,
		"note":                   "These are session assignments. Use Save Session to persist.",
	}
}

func (e *Executor) unassignInkFromDate(args map[string]any) map[string]any {
	date := argString(args, "date")
	session, result := schedule.Move(e.state.Board,
		schedule.MoveOp{FromDate: date, InkIndex: schedule.NoInk}, e.state.Inks)
	if !result.Success {
		return result.ToMap()
	}
	e.state.Board.Session = session

	return map[string]any{
		"success":   true,
		"message":   fmt.Sprintf("Removed session assignment for %s", date),
		"date":      date,
		"ink_brand": result.InkBrand,
		"ink_name":  result.InkName,
	}
}

func (e *Executor) moveInkAssignment(args map[string]any) map[string]any {
	session, result := schedule.Move(e.state.Board, schedule.MoveOp{
		FromDate: argString(args, "from_date"),
		ToDate:   argString(args, "to_date"),
		InkIndex: schedule.NoInk,
	}, e.state.Inks)
	if result.Success {
		e.state.Board.Session = session
	}
	return result.ToMap()
}

func (e *Executor) swapInkAssignments(args map[string]any) map[string]any {
	session, result := schedule.Swap(e.state.Board,
		argString(args, "date_a"), argString(args, "date_b"), e.state.Inks)
	if result.Success {
		e.state.Board.Session = session
	}
	return result.ToMap()
}

func (e *Executor) clearMonthAssignments(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	prefix := fmt.Sprintf("%d-%02d-", year, month)

	var removed, protected []map[string]any
	for date, idx := range e.state.Board.API {
		if strings.HasPrefix(date, prefix) && idx < len(e.state.Inks) {
			ink := e.state.Inks[idx]
			protected = append(protected, map[string]any{
				"date": date, "brand": ink.BrandName, "name": ink.Name,
				"reason": "Protected (from API)",
			})
		}
	}

	next := make(schedule.Assignment, len(e.state.Board.Session))
	for date, idx := range e.state.Board.Session {
		if strings.HasPrefix(date, prefix) {
			var day int
			fmt.Sscanf(date[len(prefix):], "%d", &day)
			entry := map[string]any{"date": date, "day": day}
			if idx < len(e.state.Inks) {
				entry["brand"] = e.state.Inks[idx].BrandName
				entry["name"] = e.state.Inks[idx].Name
			}
			removed = append(removed, entry)
			continue
		}
		next[date] = idx
	}
	if len(removed) > 0 {
		e.state.Board.Session = next
	}

	return map[string]any{
		"success":         len(removed) > 0 || len(protected) == 0,
		"message":         fmt.Sprintf("Cleared session assignments for %s %d", monthName(month), year),
		"month":           month,
		"month_name":      monthName(month),
		"year":            year,
		"removed_count":   len(removed),
		"protected_count": len(protected),
		"removed":         removed,
		"protected":       protected,
	}
}

func (e *Executor) assignmentsSummary(args map[string]any) map[string]any {
	year := e.yearArg(args)
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}

	merged := e.state.Board.Merged()
	type counts struct{ total, api, session int }
	monthly := map[int]*counts{}
	for m := 1; m <= 12; m++ {
		monthly[m] = &counts{}
	}
	total := 0
	for date := range merged {
		var y, m, d int
		if _, err := fmt.Sscanf(date, "%d-%d-%d", &y, &m, &d); err != nil || y != year || m < 1 || m > 12 {
			continue
		}
		monthly[m].total++
		if _, ok := e.state.Board.API[date]; ok {
			monthly[m].api++
		} else {
			monthly[m].session++
		}
		total++
	}

	summary := make([]map[string]any, 0, 12)
	for m := 1; m <= 12; m++ {
		days := schedule.DaysInMonth(year, m)
		c := monthly[m]
		summary = append(summary, map[string]any{
			"month":               m,
			"month_name":          monthName(m),
			"days_in_month":       days,
			"assigned_days":       c.total,
			"api_assignments":     c.api,
			"session_assignments": c.session,
			"unassigned_days":     days - c.total,
		})
	}

	return map[string]any{
		"success":               true,
		"year":                  year,
		"total_inks":            len(e.state.Inks),
		"total_days_in_year":    schedule.DaysInYear(year),
		"total_assigned_days":   total,
		"total_unassigned_days": schedule.DaysInYear(year) - total,
		"monthly_summary":       summary,
	}
}

func (e *Executor) findAvailableInks(args map[string]any) map[string]any {
	if len(e.state.Inks) == 0 {
		return fail("No inks available in collection")
	}
	query := argString(args, "query")
	color := argString(args, "color")
	brand := argString(args, "brand")
	includeSession := argBool(args, "include_session_assigned", true)
	limit := 20
	if n, ok := argInt(args, "limit"); ok && n > 0 {
		limit = n
	}

	apiAssigned := map[int]bool{}
	for _, idx := range e.state.Board.API {
		apiAssigned[idx] = true
	}
	sessionDate := map[int]string{}
	for date, idx := range e.state.Board.Session {
		sessionDate[idx] = date
	}

	matched := schedule.SearchInks(e.state.Inks, query, color, brand)
	matchSet := map[int]bool{}
	for _, m := range matched {
		matchSet[m.Index] = true
	}

	var available []map[string]any
	unassigned, sessionCount, apiCount := 0, 0, 0
	for idx, ink := range e.state.Inks {
		if apiAssigned[idx] {
			apiCount++
			continue
		}
		status := "unassigned"
		currentDate := ""
		if date, ok := sessionDate[idx]; ok {
			sessionCount++
			if !includeSession {
				continue
			}
			status = "session_assigned"
			currentDate = date
		} else {
			unassigned++
		}
		if !matchSet[idx] || len(available) >= limit {
			continue
		}
		info := inkInfo(ink, idx)
		info["status"] = status
		if currentDate != "" {
			info["current_date"] = currentDate
		}
		available = append(available, info)
	}

	return map[string]any{
		"success": true,
		"collection_summary": map[string]any{
			"total_inks":             len(e.state.Inks),
			"unassigned":             unassigned,
			"session_assigned":       sessionCount,
			"api_assigned_immovable": apiCount,
		},
		"matches_returned": len(available),
		"filters_applied": map[string]any{
			"query": query, "color": color, "brand": brand,
			"include_session_assigned": includeSession,
		},
		"available_inks": available,
		"hint":           "Unassigned inks can be directly assigned. Session-assigned inks can be moved to improve the overall schedule.",
	}
}

func (e *Executor) setMonthTheme(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	theme := strings.TrimSpace(argString(args, "theme"))
	if theme == "" {
		return fail("Theme name cannot be empty")
	}
	description := strings.TrimSpace(argString(args, "description"))

	key := fmt.Sprintf("%d-%02d", year, month)
	e.state.Themes[key] = models.MonthTheme{Theme: theme, Description: description}

	return map[string]any{
		"success":     true,
		"message":     fmt.Sprintf("Set theme for %s %d", monthName(month), year),
		"month":       month,
		"month_name":  monthName(month),
		"year":        year,
		"theme":       theme,
		"description": description,
		"note":        "Theme saved to session. Use Save Session to persist.",
	}
}

func (e *Executor) getMonthTheme(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	key := fmt.Sprintf("%d-%02d", year, month)

	if t, ok := e.state.Themes[key]; ok {
		return map[string]any{
			"success":     true,
			"month":       month,
			"month_name":  monthName(month),
			"year":        year,
			"theme":       t.Theme,
			"description": t.Description,
			"source":      "session",
		}
	}
	return map[string]any{
		"success":     true,
		"month":       month,
		"month_name":  monthName(month),
		"year":        year,
		"theme":       nil,
		"description": nil,
		"message":     "No theme set for this month",
	}
}

func (e *Executor) clearMonthTheme(args map[string]any) map[string]any {
	month, ok := argInt(args, "month")
	if !ok || month < 1 || month > 12 {
		return fail(fmt.Sprintf("Invalid month: %v. Must be 1-12.", args["month"]))
	}
	year := e.yearArg(args)
	key := fmt.Sprintf("%d-%02d", year, month)

	if _, ok := e.state.Themes[key]; !ok {
		return map[string]any{
			"success": true,
			"message": fmt.Sprintf("No theme was set for %s %d", monthName(month), year),
			"month":   month,
			"year":    year,
		}
	}
	delete(e.state.Themes, key)
	return map[string]any{
		"success":    true,
		"message":    fmt.Sprintf("Cleared theme for %s %d", monthName(month), year),
		"month":      month,
		"month_name": monthName(month),
		"year":       year,
	}
}
