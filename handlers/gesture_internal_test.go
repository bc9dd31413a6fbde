// Copyright (c) 2026 Mats Viklund.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"testing"
	"time"
)

func TestGesturePruneExpiredSessions(t *testing.T) {
	h := NewGestureHandler(nil)
	h.sessions["stale"] = &gestureSession{lastSeen: time.Now().Add(-2 * gestureSessionTTL)}
	h.sessions["fresh"] = &gestureSession{lastSeen: time.Now()}

	h.mu.Lock()
	h.prune()
	h.mu.Unlock()

	if _, ok := h.sessions["stale"]; ok {
		t.Error("expired session survived prune")
	}
	if _, ok := h.sessions["fresh"]; !ok {
		t.Error("live session evicted by prune")
	}
}

func TestGesturePruneCapsSessionCount(t *testing.T) {
	h := NewGestureHandler(nil)
	now := time.Now()
	for i := 0; i < maxGestureSessions+40; i++ {
		h.sessions[fmt.Sprintf("token-%04d", i)] = &gestureSession{
			lastSeen: now.Add(time.Duration(i) * time.Millisecond),
		}
	}

	h.mu.Lock()
	h.prune()
	h.mu.Unlock()

	if len(h.sessions) >= maxGestureSessions {
		t.Fatalf("%d sessions after prune, cap is %d", len(h.sessions), maxGestureSessions)
	}
	// Eviction picks the longest-idle sessions first.
	if _, ok := h.sessions["token-0000"]; ok {
		t.Error("longest-idle session survived a full map")
	}
	newest := fmt.Sprintf("token-%04d", maxGestureSessions+39)
	if _, ok := h.sessions[newest]; !ok {
		t.Error("most recent session evicted")
	}
}
