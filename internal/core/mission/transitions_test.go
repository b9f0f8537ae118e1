package mission

import (
	"testing"
	"time"
)

func TestApplyStart(t *testing.T) {
	fixedTime := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		hasStartedAt  bool
		wantStartedAt bool
	}{
		{
			name:          "first start stamps StartedAt",
			hasStartedAt:  false,
			wantStartedAt: true,
		},
		{
			name:          "re-affirm keeps original StartedAt",
			hasStartedAt:  true,
			wantStartedAt: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ApplyStart(tt.hasStartedAt, fixedTime)

			if result.NewStatus != StatusInProgress {
				t.Errorf("ApplyStart().NewStatus = %q, want %q", result.NewStatus, StatusInProgress)
			}
			if result.EventKind != EventStarted {
				t.Errorf("ApplyStart().EventKind = %q, want %q", result.EventKind, EventStarted)
			}
			if result.CompletedAt != nil {
				t.Errorf("ApplyStart().CompletedAt = %v, want nil", result.CompletedAt)
			}

			if tt.wantStartedAt {
				if result.StartedAt == nil {
					t.Error("ApplyStart().StartedAt = nil, want non-nil")
				} else if !result.StartedAt.Equal(fixedTime) {
					t.Errorf("ApplyStart().StartedAt = %v, want %v", result.StartedAt, fixedTime)
				}
			} else {
				if result.StartedAt != nil {
					t.Errorf("ApplyStart().StartedAt = %v, want nil", result.StartedAt)
				}
			}
		})
	}
}

func TestApplyComplete(t *testing.T) {
	fixedTime := time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

	result := ApplyComplete(fixedTime)

	if result.NewStatus != StatusCompleted {
		t.Errorf("ApplyComplete().NewStatus = %q, want %q", result.NewStatus, StatusCompleted)
	}
	if result.EventKind != EventCompleted {
		t.Errorf("ApplyComplete().EventKind = %q, want %q", result.EventKind, EventCompleted)
	}
	if result.CompletedAt == nil {
		t.Error("ApplyComplete().CompletedAt = nil, want non-nil")
	} else if !result.CompletedAt.Equal(fixedTime) {
		t.Errorf("ApplyComplete().CompletedAt = %v, want %v", result.CompletedAt, fixedTime)
	}
	if result.StartedAt != nil {
		t.Errorf("ApplyComplete().StartedAt = %v, want nil", result.StartedAt)
	}
}
