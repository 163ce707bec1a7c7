package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/config"
)

func TestDifficultyEngine(t *testing.T) {
	engine := NewDifficultyEngine(config.DefaultGameConfig())

	tests := []struct {
		round        int
		wantVelocity float64
		wantDrop     float64
		wantBonus    int
	}{
		{round: 1, wantVelocity: 1, wantDrop: 10, wantBonus: 1000},
		{round: 2, wantVelocity: 2, wantDrop: 20, wantBonus: 2000},
		{round: 7, wantVelocity: 7, wantDrop: 70, wantBonus: 7000},
	}

	for _, tt := range tests {
		if got := engine.AlienVelocity(tt.round); got != tt.wantVelocity {
			t.Errorf("round %d: velocity = %v, want %v", tt.round, got, tt.wantVelocity)
		}
		if got := engine.DropDistance(tt.round); got != tt.wantDrop {
			t.Errorf("round %d: drop = %v, want %v", tt.round, got, tt.wantDrop)
		}
		if got := engine.RoundBonus(tt.round); got != tt.wantBonus {
			t.Errorf("round %d: bonus = %d, want %d", tt.round, got, tt.wantBonus)
		}
	}
}
