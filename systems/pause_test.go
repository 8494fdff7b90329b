package systems

import (
	"testing"

	"github.com/automoto/crygeen/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPauseStep(t *testing.T) {
	tests := []struct {
		name                  string
		paused                bool
		pause, escape, resume bool
		want                  PauseOutcome
		wantPaused            bool
	}{
		{"idle", false, false, false, false, PauseNone, false},
		{"pause", false, true, false, false, PauseToggled, true},
		{"escape alone does not pause", false, false, true, false, PauseNone, false},
		{"resume with enter", true, false, false, true, PauseToggled, false},
		{"resume with pause key", true, true, false, false, PauseToggled, false},
		{"escape leaves", true, false, true, false, PauseLeaveLevel, true},
		{"escape wins over pause key", true, true, true, false, PauseLeaveLevel, true},
		{"waiting", true, false, false, false, PauseNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := components.PauseData{IsPaused: tt.paused}
			if got := PauseStep(&p, tt.pause, tt.escape, tt.resume); got != tt.want {
				t.Errorf("outcome: got %v, want %v", got, tt.want)
			}
			if p.IsPaused != tt.wantPaused {
				t.Errorf("paused: got %v, want %v", p.IsPaused, tt.wantPaused)
			}
		})
	}
}

func TestWithGameplayChecksSkipsWhilePaused(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	runs := 0
	system := WithGameplayChecks(func(*ecs.ECS) { runs++ })

	system(e)
	GetOrCreatePause(e).IsPaused = true
	system(e)
	GetOrCreatePause(e).IsPaused = false
	system(e)

	if runs != 2 {
		t.Errorf("runs: got %d, want 2", runs)
	}
}
