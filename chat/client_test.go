// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package chat

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"

	"github.com/mviklund/inkyear/models"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient(context.Background(), "", "")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("err = %v, want ErrNoAPIKey", err)
	}
}

func TestHistoryContentsRoles(t *testing.T) {
	history := []models.ChatMessage{
		{Role: "user", Content: "plan my January"},
		{Role: "assistant", Content: "on it"},
		{Role: "user", Content: "thanks"},
	}

	contents := historyContents(history)
	if len(contents) != 3 {
		t.Fatalf("len = %d, want 3", len(contents))
	}

	wantRoles := []genai.Role{genai.RoleUser, genai.RoleModel, genai.RoleUser}
	for i, c := range contents {
		if genai.Role(c.Role) != wantRoles[i] {
			t.Errorf("contents[%d].Role = %q, want %q", i, c.Role, wantRoles[i])
		}
		if len(c.Parts) == 0 || c.Parts[0].Text != history[i].Content {
			t.Errorf("contents[%d] text = %+v", i, c.Parts)
		}
	}
}

func TestHistoryContentsEmpty(t *testing.T) {
	if contents := historyContents(nil); len(contents) != 0 {
		t.Errorf("contents = %v, want empty", contents)
	}
}
