// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Database type constants
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// Theme source constants
const (
	ThemeSourceSession = "session"
	ThemeSourceAPI     = "api"
	ThemeSourceNone    = "none"
)

// Request types

type AssignRequest struct {
	InkIndex int    `json:"ink_index"`
	Date     string `json:"date"`
}

type MoveRequest struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

type SwapRequest struct {
	DateA string `json:"date_a"`
	DateB string `json:"date_b"`
}

type RandomizeRequest struct {
	Year int    `json:"year"`
	Seed *int64 `json:"seed,omitempty"`
}

type SetThemeRequest struct {
	Month       int    `json:"month"`
	Theme       string `json:"theme"`
	Description string `json:"description"`
}

type DragStartRequest struct {
	SourceDate string `json:"source_date"`
	InkIndex   int    `json:"ink_index"`
}

type DragEnterRequest struct {
	Date string `json:"date"`
}

type DragDropRequest struct {
	Date string `json:"date"`
}

type PickerPopulateRequest struct {
	Query string `json:"query"`
	Date  string `json:"date"`
}

type PickerKeyRequest struct {
	Key string `json:"key"` // "down", "up", or "confirm"
}

type ChatRequest struct {
	Message string `json:"message"`
}

// Response types

type InkListResponse struct {
	Total     int    `json:"total"`
	Inks      []Ink  `json:"inks"`
	CacheInfo string `json:"cache_info,omitempty"`
}

type RefreshResponse struct {
	Fetched   int    `json:"fetched"`
	CacheInfo string `json:"cache_info"`
}

type MonthResponse struct {
	Year  int        `json:"year"`
	Month int        `json:"month"`
	Theme ThemeInfo  `json:"theme"`
	Cells []CellData `json:"cells"`
}

type YearSummaryResponse struct {
	Year       int            `json:"year"`
	TotalDays  int            `json:"total_days"`
	Assigned   int            `json:"assigned"`
	Protected  int            `json:"protected"`
	Session    int            `json:"session"`
	Unassigned int            `json:"unassigned"`
	ByMonth    map[string]int `json:"by_month"`
}

type RandomizeResponse struct {
	Year    int    `json:"year"`
	Placed  int    `json:"placed"`
	Pinned  int    `json:"pinned"`
	Seed    int64  `json:"seed"`
	Message string `json:"message"`
}

type DragStateResponse struct {
	Dragging   bool   `json:"dragging"`
	SourceDate string `json:"source_date,omitempty"`
	Target     string `json:"target,omitempty"`
	Highlight  bool   `json:"highlight"`
}

type PickerStateResponse struct {
	Index     int    `json:"index"`
	Length    int    `json:"length"`
	Offset    int    `json:"offset"`
	Confirmed *int   `json:"confirmed,omitempty"`
	Message   string `json:"message,omitempty"`
}

type CommitResponse struct {
	Date    string `json:"date"`
	InkID   string `json:"ink_id"`
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply     string         `json:"reply"`
	ToolCalls []ToolCallInfo `json:"tool_calls,omitempty"`
}

type ToolCallInfo struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// Domain types

// Ink is a single collected ink as flattened from the catalog API.
// Immutable for the lifetime of a fetch; assignments reference inks
// by their index in the fetched list.
type Ink struct {
	ID                  string   `json:"id"`
	BrandName           string   `json:"brand_name"`
	LineName            string   `json:"line_name"`
	Name                string   `json:"name"`
	Maker               string   `json:"maker"`
	Color               string   `json:"color"`
	ClusterTags         []string `json:"cluster_tags"`
	Kind                string   `json:"kind"`
	Swabbed             bool     `json:"swabbed"`
	Used                bool     `json:"used"`
	Archived            bool     `json:"archived"`
	Private             bool     `json:"private"`
	UsageCount          int      `json:"usage_count"`
	DailyUsage          int      `json:"daily_usage"`
	LastUsedOn          string   `json:"last_used_on"`
	Comment             string   `json:"comment"`
	PrivateComment      string   `json:"private_comment"`
	SimplifiedBrandName string   `json:"simplified_brand_name"`
	SimplifiedInkName   string   `json:"simplified_ink_name"`
}

// CellData carries everything needed to render one calendar cell.
type CellData struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	HasInk   bool   `json:"has_ink"`
	InkIndex *int   `json:"ink_index,omitempty"`
	InkName  string `json:"ink_name,omitempty"`
	InkBrand string `json:"ink_brand,omitempty"`
	InkColor string `json:"ink_color,omitempty"`
	CanEdit  bool   `json:"can_edit"`
	IsAPI    bool   `json:"is_api"`
}

// ThemeInfo is a month theme with its source tier.
type ThemeInfo struct {
	Theme       string `json:"theme"`
	Description string `json:"description"`
	Source      string `json:"source"` // session | api | none
}

// MonthTheme is a stored session theme, keyed elsewhere by "YYYY-MM".
type MonthTheme struct {
	Theme       string `json:"theme"`
	Description string `json:"description"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
