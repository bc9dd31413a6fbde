// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"testing"

	"github.com/mviklund/inkyear/models"
	"github.com/mviklund/inkyear/schedule"
)

func testInks() []models.Ink {
	return []models.Ink{
		{ID: "1", BrandName: "Diamine", Name: "Blue Velvet", ClusterTags: []string{"blue"}},
		{ID: "2", BrandName: "Pilot", Name: "Iroshizuku Kon-peki", ClusterTags: []string{"blue"}},
		{ID: "3", BrandName: "Noodler's", Name: "Apache Sunset", ClusterTags: []string{"orange"}},
		{ID: "4", BrandName: "Sailor", Name: "Yama-dori", ClusterTags: []string{"teal"}},
	}
}

func testState() *State {
	return &State{
		Inks: testInks(),
		Year: 2026,
		Board: schedule.Board{
			API:     schedule.Assignment{"2026-01-01": 0},
			Session: schedule.Assignment{"2026-01-02": 1},
		},
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("launch_missiles", nil)
	if result["success"] != false {
		t.Error("expected unknown tool to fail")
	}
}

func TestListAllInks(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("list_all_inks", nil)
	if result["success"] != true {
		t.Fatalf("unexpected failure: %v", result["message"])
	}
	if result["total_inks"] != 4 {
		t.Errorf("total_inks = %v, want 4", result["total_inks"])
	}
	inks := result["inks"].([]map[string]any)
	if inks[0]["already_assigned"] != true {
		t.Error("ink 0 is pinned and should be already_assigned")
	}
	if inks[2]["already_assigned"] != false {
		t.Error("ink 2 is unassigned")
	}
}

func TestSearchInksByColor(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("search_inks", map[string]any{"color": "blue"})
	if result["matches_found"] != 2 {
		t.Errorf("matches_found = %v, want 2", result["matches_found"])
	}
}

func TestAssignInkToDate(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("assign_ink_to_date", map[string]any{
		"ink_identifier": "Apache Sunset",
		"date":           "2026-01-05",
	})
	if result["success"] != true {
		t.Fatalf("assign failed: %v", result["message"])
	}
	if state.Board.Session["2026-01-05"] != 2 {
		t.Errorf("session[2026-01-05] = %d, want 2", state.Board.Session["2026-01-05"])
	}
}

func TestAssignInkToProtectedDateRejected(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("assign_ink_to_date", map[string]any{
		"ink_identifier": "Apache Sunset",
		"date":           "2026-01-01",
	})
	if result["success"] != false {
		t.Fatal("assigning onto a pinned date must fail")
	}
	if len(state.Board.Session) != 1 {
		t.Error("session must be unchanged after rejection")
	}
}

func TestAssignUnknownInk(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("assign_ink_to_date", map[string]any{
		"ink_identifier": "Nonexistent Ink",
		"date":           "2026-01-05",
	})
	if result["success"] != false {
		t.Error("unknown ink should fail")
	}
}

func TestUnassignInkFromDate(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("unassign_ink_from_date", map[string]any{"date": "2026-01-02"})
	if result["success"] != true {
		t.Fatalf("unassign failed: %v", result["message"])
	}
	if _, ok := state.Board.Session["2026-01-02"]; ok {
		t.Error("session assignment should be removed")
	}
	if result["ink_name"] != "Iroshizuku Kon-peki" {
		t.Errorf("ink_name = %v", result["ink_name"])
	}
}

func TestUnassignProtectedRejected(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("unassign_ink_from_date", map[string]any{"date": "2026-01-01"})
	if result["success"] != false {
		t.Fatal("unassigning a pinned date must fail")
	}
	if _, ok := state.Board.API["2026-01-01"]; !ok {
		t.Error("pinned assignment must survive")
	}
}

func TestMoveInkAssignment(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("move_ink_assignment", map[string]any{
		"from_date": "2026-01-02",
		"to_date":   "2026-03-10",
	})
	if result["success"] != true {
		t.Fatalf("move failed: %v", result["message"])
	}
	if state.Board.Session["2026-03-10"] != 1 {
		t.Error("ink should land on target date")
	}
	if _, ok := state.Board.Session["2026-01-02"]; ok {
		t.Error("source date should be cleared")
	}
}

func TestSwapInkAssignments(t *testing.T) {
	state := testState()
	state.Board.Session["2026-01-03"] = 3
	exec := NewExecutor(state)

	result := exec.Execute("swap_ink_assignments", map[string]any{
		"date_a": "2026-01-02",
		"date_b": "2026-01-03",
	})
	if result["success"] != true {
		t.Fatalf("swap failed: %v", result["message"])
	}
	if state.Board.Session["2026-01-02"] != 3 || state.Board.Session["2026-01-03"] != 1 {
		t.Errorf("swap result wrong: %v", state.Board.Session)
	}
}

func TestSwapProtectedRejected(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("swap_ink_assignments", map[string]any{
		"date_a": "2026-01-01",
		"date_b": "2026-01-02",
	})
	if result["success"] != false {
		t.Fatal("swap involving a pinned date must fail")
	}
}

func TestGetMonthAssignments(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("get_month_assignments", map[string]any{"month": float64(1)})
	if result["success"] != true {
		t.Fatalf("unexpected failure: %v", result["message"])
	}
	if result["assigned_days"] != 2 {
		t.Errorf("assigned_days = %v, want 2", result["assigned_days"])
	}
	if result["days_in_month"] != 31 {
		t.Errorf("days_in_month = %v, want 31", result["days_in_month"])
	}
	assignments := result["assignments"].([]map[string]any)
	if assignments[0]["protected"] != true {
		t.Error("day 1 comes from a pin and must be protected")
	}
	if assignments[1]["protected"] != false {
		t.Error("day 2 is a session assignment")
	}
}

func TestGetMonthAssignmentsInvalidMonth(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("get_month_assignments", map[string]any{"month": float64(13)})
	if result["success"] != false {
		t.Error("month 13 should fail")
	}
}

func TestBulkAssignMonth(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("bulk_assign_month", map[string]any{
		"ink_identifiers": []any{"Apache Sunset", "Yama-dori"},
		"month":           float64(2),
	})
	if result["success"] != true {
		t.Fatalf("bulk assign failed: %v", result["message"])
	}
	if result["successful_assignments"] != 2 {
		t.Errorf("successful_assignments = %v, want 2", result["successful_assignments"])
	}
	if state.Board.Session["2026-02-01"] != 2 || state.Board.Session["2026-02-02"] != 3 {
		t.Errorf("bulk placement wrong: %v", state.Board.Session)
	}
}

func TestBulkAssignSkipsAlreadyAssigned(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("bulk_assign_month", map[string]any{
		"ink_identifiers": []any{"Blue Velvet", "Apache Sunset"},
		"month":           float64(2),
	})
	if result["already_assigned_inks"] != 1 {
		t.Errorf("already_assigned_inks = %v, want 1 (Blue Velvet is pinned)", result["already_assigned_inks"])
	}
	if result["successful_assignments"] != 1 {
		t.Errorf("successful_assignments = %v, want 1", result["successful_assignments"])
	}
}

func TestClearMonthAssignments(t *testing.T) {
	state := testState()
	state.Board.Session["2026-01-15"] = 2
	state.Board.Session["2026-02-01"] = 3
	exec := NewExecutor(state)

	result := exec.Execute("clear_month_assignments", map[string]any{"month": float64(1)})
	if result["removed_count"] != 2 {
		t.Errorf("removed_count = %v, want 2", result["removed_count"])
	}
	if result["protected_count"] != 1 {
		t.Errorf("protected_count = %v, want 1", result["protected_count"])
	}
	if _, ok := state.Board.Session["2026-02-01"]; !ok {
		t.Error("other months must be untouched")
	}
	if _, ok := state.Board.API["2026-01-01"]; !ok {
		t.Error("pinned assignment must survive clearing")
	}
}

func TestAssignmentsSummary(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("get_current_assignments_summary", nil)
	if result["success"] != true {
		t.Fatalf("unexpected failure: %v", result["message"])
	}
	if result["total_assigned_days"] != 2 {
		t.Errorf("total_assigned_days = %v, want 2", result["total_assigned_days"])
	}
	if result["total_days_in_year"] != 365 {
		t.Errorf("total_days_in_year = %v, want 365", result["total_days_in_year"])
	}
	summary := result["monthly_summary"].([]map[string]any)
	if summary[0]["api_assignments"] != 1 || summary[0]["session_assignments"] != 1 {
		t.Errorf("january summary wrong: %v", summary[0])
	}
}

func TestFindAvailableInksExcludesProtected(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("find_available_inks_for_theme", map[string]any{})
	if result["success"] != true {
		t.Fatalf("unexpected failure: %v", result["message"])
	}
	available := result["available_inks"].([]map[string]any)
	for _, info := range available {
		if info["index"] == 0 {
			t.Error("pinned ink 0 must never be offered")
		}
	}
	if result["matches_returned"] != 3 {
		t.Errorf("matches_returned = %v, want 3", result["matches_returned"])
	}
}

func TestFindAvailableInksUnassignedOnly(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("find_available_inks_for_theme", map[string]any{
		"include_session_assigned": false,
	})
	available := result["available_inks"].([]map[string]any)
	for _, info := range available {
		if info["status"] != "unassigned" {
			t.Errorf("unexpected status %v", info["status"])
		}
	}
	if len(available) != 2 {
		t.Errorf("len(available) = %d, want 2", len(available))
	}
}

func TestThemeLifecycle(t *testing.T) {
	state := testState()
	exec := NewExecutor(state)

	result := exec.Execute("set_month_theme", map[string]any{
		"month":       float64(1),
		"theme":       "Winter Blues",
		"description": "Cool tones for the winter sky",
	})
	if result["success"] != true {
		t.Fatalf("set failed: %v", result["message"])
	}

	result = exec.Execute("get_month_theme", map[string]any{"month": float64(1)})
	if result["theme"] != "Winter Blues" {
		t.Errorf("theme = %v", result["theme"])
	}
	if result["source"] != "session" {
		t.Errorf("source = %v", result["source"])
	}

	result = exec.Execute("clear_month_theme", map[string]any{"month": float64(1)})
	if result["success"] != true {
		t.Fatalf("clear failed: %v", result["message"])
	}
	if len(state.Themes) != 0 {
		t.Error("theme must be gone after clear")
	}
}

func TestSetMonthThemeEmptyName(t *testing.T) {
	exec := NewExecutor(testState())
	result := exec.Execute("set_month_theme", map[string]any{
		"month": float64(1),
		"theme": "   ",
	})
	if result["success"] != false {
		t.Error("blank theme name should fail")
	}
}

func TestDeclarationsMatchExecutor(t *testing.T) {
	exec := NewExecutor(testState())
	for _, decl := range Declarations() {
		result := exec.Execute(decl.Name, map[string]any{})
		if msg, ok := result["message"].(string); ok && msg == "Unknown tool: "+decl.Name {
			t.Errorf("declared tool %q has no executor case", decl.Name)
		}
	}
}
