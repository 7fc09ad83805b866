package engine

import (
	"testing"

	"github.com/wricardo/kartsim/game/kart"
)

func createTestKart(t *testing.T) kart.Kart {
	t.Helper()
	k, err := kart.NewBuilder().SetColor("red").SetEngine("Turbo").Build()
	if err != nil {
		t.Fatalf("failed to build test kart: %v", err)
	}
	return k
}

func createTestDriver(t *testing.T, strategy Strategy, stability int, rolls ...int) *Driver {
	t.Helper()
	profile := Profile{Key: "test", Name: "Tester", Speed: 1, Stability: stability, Strategy: strategy}
	return NewDriver(profile, createTestKart(t), Sequence(rolls...))
}

func TestNewDriver(t *testing.T) {
	profile := Profile{Key: "peach", Name: "Peach", Speed: 3, Stability: 1, Strategy: Fast}
	k := createTestKart(t)
	d := NewDriver(profile, k, Sequence(1))

	if d.Name != "Peach" || d.Speed != 3 || d.Stability != 1 || d.Strategy != Fast {
		t.Errorf("driver attributes not copied from profile: %+v", d)
	}
	if d.Position != 0 {
		t.Errorf("expected start position 0, got %d", d.Position)
	}
	if d.Kart != k {
		t.Errorf("expected kart %v, got %v", k, d.Kart)
	}
}

func TestNewDriver_DefaultRoller(t *testing.T) {
	d := NewDriver(Profile{Name: "Mario", Stability: 2, Strategy: Balanced}, createTestKart(t), nil)
	rec := d.PlayTurn()
	if rec.Roll < 1 || rec.Roll > DieSides {
		t.Errorf("expected roll in [1,%d], got %d", DieSides, rec.Roll)
	}
}

func TestPlayTurn_BasicMovement(t *testing.T) {
	tests := []struct {
		strategy Strategy
		roll     int
		expected int
	}{
		{Balanced, 4, 8},
		{Stable, 4, 4},
		{Fast, 4, 12},
	}

	for _, test := range tests {
		t.Run(test.strategy.String(), func(t *testing.T) {
			d := createTestDriver(t, test.strategy, 3, test.roll)
			rec := d.PlayTurn()

			if d.Position != test.expected {
				t.Errorf("expected position %d, got %d", test.expected, d.Position)
			}
			if rec.Roll != test.roll || rec.From != 0 || rec.To != test.expected {
				t.Errorf("unexpected record %+v", rec)
			}
			if rec.Slipped || rec.Clamped {
				t.Errorf("expected plain move, got %+v", rec)
			}
		})
	}
}

func TestPlayTurn_Slip(t *testing.T) {
	for _, stability := range []int{0, 1} {
		d := createTestDriver(t, Fast, stability, SlipRoll)
		d.Position = 7

		rec := d.PlayTurn()
		if d.Position != 7 {
			t.Errorf("stability %d: expected position unchanged at 7, got %d", stability, d.Position)
		}
		if !rec.Slipped || rec.Clamped || rec.Moved() {
			t.Errorf("stability %d: expected slipped record, got %+v", stability, rec)
		}
	}
}

func TestPlayTurn_NoSlipForStableDrivers(t *testing.T) {
	for _, stability := range []int{2, 3} {
		d := createTestDriver(t, Stable, stability, SlipRoll)
		rec := d.PlayTurn()
		if rec.Slipped {
			t.Errorf("stability %d should not slip", stability)
		}
		if d.Position != SlipRoll {
			t.Errorf("stability %d: expected position %d, got %d", stability, SlipRoll, d.Position)
		}
	}
}

func TestPlayTurn_LowStabilityMovesOnOtherRolls(t *testing.T) {
	for roll := 1; roll < SlipRoll; roll++ {
		d := createTestDriver(t, Stable, 1, roll)
		rec := d.PlayTurn()
		if rec.Slipped || d.Position != roll {
			t.Errorf("roll %d: expected move to %d, got %+v", roll, roll, rec)
		}
	}
}

func TestPlayTurn_ClampsAtFinishLine(t *testing.T) {
	d := createTestDriver(t, Fast, 3, 6)
	d.Position = 15

	rec := d.PlayTurn()
	if d.Position != FinishLine {
		t.Errorf("expected clamp to %d, got %d", FinishLine, d.Position)
	}
	if !rec.Clamped {
		t.Error("expected record to be marked clamped")
	}
	if !d.Finished() {
		t.Error("expected driver to be finished")
	}
}

func TestPlayTurn_ExactFinishNotClamped(t *testing.T) {
	d := createTestDriver(t, Stable, 3, 4)
	d.Position = 15

	rec := d.PlayTurn()
	if d.Position != FinishLine || rec.Clamped {
		t.Errorf("expected exact landing on finish line without clamp, got %+v", rec)
	}
}

func TestPlayTurn_PositionInvariant(t *testing.T) {
	strategies := []Strategy{Balanced, Stable, Fast}
	for _, strategy := range strategies {
		for stability := 0; stability <= 3; stability++ {
			d := NewDriver(Profile{Name: "Prop", Stability: stability, Strategy: strategy}, createTestKart(t), NewSeededRoller(int64(stability)))
			for turn := 0; turn < 50; turn++ {
				before := d.Position
				rec := d.PlayTurn()
				if d.Position < before {
					t.Fatalf("%s/%d: position decreased from %d to %d", strategy, stability, before, d.Position)
				}
				if d.Position > FinishLine {
					t.Fatalf("%s/%d: position %d beyond finish line", strategy, stability, d.Position)
				}
				if rec.Slipped && d.Position != before {
					t.Fatalf("%s/%d: slipped turn moved the driver", strategy, stability)
				}
			}
		}
	}
}

func TestDriver_RenderTrack(t *testing.T) {
	d := createTestDriver(t, Balanced, 2, 1)
	if d.RenderTrack() != RenderTrack(0) {
		t.Errorf("driver track should match RenderTrack(0)")
	}
	d.PlayTurn()
	if d.RenderTrack() != RenderTrack(2) {
		t.Errorf("driver track should follow the driver position")
	}
}
