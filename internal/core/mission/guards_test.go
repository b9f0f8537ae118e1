package mission

import "testing"

func TestCanStart(t *testing.T) {
	tests := []struct {
		name        string
		current     Status
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "can start not started mission",
			current:     StatusNotStarted,
			wantAllowed: true,
		},
		{
			name:        "can start queued mission",
			current:     StatusQueued,
			wantAllowed: true,
		},
		{
			name:        "can re-affirm in progress mission",
			current:     StatusInProgress,
			wantAllowed: true,
		},
		{
			name:        "can re-affirm current mission",
			current:     StatusCurrent,
			wantAllowed: true,
		},
		{
			name:        "cannot start completed mission",
			current:     StatusCompleted,
			wantAllowed: false,
			wantReason:  "cannot start a mission with status Completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStart(tt.current)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanComplete(t *testing.T) {
	tests := []struct {
		name        string
		current     Status
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "can complete in progress mission",
			current:     StatusInProgress,
			wantAllowed: true,
		},
		{
			name:        "can complete current mission",
			current:     StatusCurrent,
			wantAllowed: true,
		},
		{
			name:        "cannot complete not started mission",
			current:     StatusNotStarted,
			wantAllowed: false,
			wantReason:  "cannot complete a mission with status Not Started - mission must be active",
		},
		{
			name:        "cannot complete queued mission",
			current:     StatusQueued,
			wantAllowed: false,
			wantReason:  "cannot complete a mission with status Queued - mission must be active",
		},
		{
			name:        "cannot complete completed mission",
			current:     StatusCompleted,
			wantAllowed: false,
			wantReason:  "cannot complete a mission with status Completed - mission must be active",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanComplete(tt.current)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestGuardResultError(t *testing.T) {
	allowed := GuardResult{Allowed: true}
	if err := allowed.Error(); err != nil {
		t.Errorf("Error() on allowed result = %v, want nil", err)
	}

	denied := GuardResult{Allowed: false, Reason: "cannot start a mission with status Completed"}
	err := denied.Error()
	if err == nil {
		t.Fatal("Error() on denied result = nil, want error")
	}
	if err.Error() != denied.Reason {
		t.Errorf("Error() = %q, want %q", err.Error(), denied.Reason)
	}
}
