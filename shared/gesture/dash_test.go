package gesture

import (
	"testing"

	"github.com/automoto/marbledrones/shared/gamemath"
)

const tick = 1.0 / 60

func stick(x, y float64) gamemath.Vec2 {
	return gamemath.Vec2{X: x, Y: y}
}

// flick runs one complete gesture: rest, snap out to the right, spring back.
func flick(d *StickDash) []bool {
	return []bool{
		d.Step(stick(0, 0), tick),
		d.Step(stick(0.9, 0), tick),
		d.Step(stick(0.1, 0), tick),
	}
}

func TestStickDashTriggersOncePerFlick(t *testing.T) {
	var d StickDash

	got := flick(&d)
	want := []bool{false, false, true}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d: triggered = %v, want %v", i, got[i], want[i])
		}
	}
	if d.Vector() != stick(1, 0) {
		t.Errorf("Vector() = %v, want {1 0}", d.Vector())
	}
	if d.State() != DashConsumed {
		t.Errorf("State() = %v, want %v", d.State(), DashConsumed)
	}
}

func TestStickDashRepeatedFlicks(t *testing.T) {
	var d StickDash
	triggers := 0

	for i := 0; i < 5; i++ {
		for _, fired := range flick(&d) {
			if fired {
				triggers++
			}
		}
		// Let the consumed marker clear before the next gesture.
		if d.Step(stick(0, 0), tick) {
			t.Fatalf("cycle %d: triggered while clearing", i)
		}
	}

	if triggers != 5 {
		t.Errorf("triggers = %d, want 5", triggers)
	}
}

func TestStickDashTriggerLastsOneStep(t *testing.T) {
	var d StickDash
	flick(&d)
	if !d.Triggered() {
		t.Fatal("expected flick to trigger")
	}

	d.Step(stick(0.1, 0), tick)
	if d.Triggered() {
		t.Error("trigger still set one step later")
	}
	if d.State() != DashInnerZone {
		t.Errorf("State() = %v, want %v after reset and rest", d.State(), DashInnerZone)
	}
}

func TestStickDashTriggerClearsOnLongFrame(t *testing.T) {
	var d StickDash
	flick(&d)

	d.Step(stick(0.5, 0), 1.0)
	if d.Triggered() {
		t.Error("trigger survived a step longer than the timeout")
	}
	if d.State() != DashOutside {
		t.Errorf("State() = %v, want %v", d.State(), DashOutside)
	}
}

func TestStickDashTimeoutBeforeOuterZone(t *testing.T) {
	var d StickDash

	d.Step(stick(0, 0), tick)
	if d.State() != DashInnerZone {
		t.Fatalf("State() = %v, want %v", d.State(), DashInnerZone)
	}

	// Drift half way out and linger past the timeout.
	if d.Step(stick(0.5, 0), 0.1) {
		t.Fatal("triggered while drifting")
	}
	if d.Step(stick(0.5, 0), 0.1) {
		t.Fatal("triggered while drifting")
	}
	if d.State() != DashOutside {
		t.Fatalf("State() = %v, want %v after timeout", d.State(), DashOutside)
	}

	// A late snap out and back must not complete the abandoned gesture.
	for _, s := range []gamemath.Vec2{stick(0.9, 0), stick(0.1, 0)} {
		if d.Step(s, tick) {
			t.Fatalf("triggered on %v after the gesture was abandoned", s)
		}
	}
}

func TestStickDashSlowReturnIsAbandoned(t *testing.T) {
	var d StickDash

	d.Step(stick(0, 0), tick)
	d.Step(stick(0, -1), tick)
	if d.State() != DashExitedInner {
		t.Fatalf("State() = %v, want %v", d.State(), DashExitedInner)
	}

	d.Step(stick(0, -1), 0.25)
	if d.State() != DashOutside {
		t.Fatalf("State() = %v, want %v", d.State(), DashOutside)
	}
	if d.Step(stick(0, 0), tick) {
		t.Error("late return triggered a dash")
	}
}

func TestStickDashAdvancesOneStatePerStep(t *testing.T) {
	var d StickDash
	order := []DashState{DashOutside}

	for _, s := range []gamemath.Vec2{stick(0, 0), stick(0, 0.8), stick(0, 0)} {
		before := d.State()
		d.Step(s, tick)
		after := d.State()
		if after == before {
			t.Fatalf("no progress from %v on %v", before, s)
		}
		order = append(order, after)
	}

	want := []DashState{DashOutside, DashInnerZone, DashExitedInner, DashConsumed}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("state %d = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestStickDashTimerResetsOnTransition(t *testing.T) {
	var d StickDash
	d.Step(stick(0, 0), tick)
	if d.Timer() != DefaultTimeout {
		t.Errorf("Timer() = %f, want %f", d.Timer(), DefaultTimeout)
	}

	d.Step(stick(0, 0), 0.05)
	d.Step(stick(1, 0), tick)
	if d.Timer() != DefaultTimeout {
		t.Errorf("Timer() after transition = %f, want %f", d.Timer(), DefaultTimeout)
	}
}

func TestStickDashCustomThresholds(t *testing.T) {
	d := NewStickDash(0.1, 0.5, 0.5)

	d.Step(stick(0.05, 0), tick)
	d.Step(stick(0, 0.6), tick)
	if !d.Step(stick(0, 0.05), tick) {
		t.Fatal("expected trigger with custom thresholds")
	}
	if d.Vector() != stick(0, 1) {
		t.Errorf("Vector() = %v, want {0 1}", d.Vector())
	}
}

func TestStickDashReset(t *testing.T) {
	var d StickDash
	d.Step(stick(0, 0), tick)
	d.Step(stick(1, 0), tick)
	d.Reset()

	if d.State() != DashOutside || d.Timer() != 0 {
		t.Errorf("after Reset state=%v timer=%f", d.State(), d.Timer())
	}
	if d.Step(stick(0, 0), tick) {
		t.Error("reset detector triggered on rest")
	}
}

func TestKeyDashRisingEdge(t *testing.T) {
	var k KeyDash

	tests := []struct {
		pressed bool
		stick   gamemath.Vec2
		want    bool
	}{
		{false, stick(1, 0), false},
		{true, stick(0, 2), true},
		{true, stick(1, 0), false},
		{false, stick(1, 0), false},
		{true, stick(-3, 0), true},
	}

	for i, tt := range tests {
		if got := k.Step(tt.pressed, tt.stick); got != tt.want {
			t.Errorf("step %d: Step(%v) = %v, want %v", i, tt.pressed, got, tt.want)
		}
	}
	if k.Vector() != stick(-1, 0) {
		t.Errorf("Vector() = %v, want {-1 0}", k.Vector())
	}
}

func TestKeyDashKeepsDirectionFromPress(t *testing.T) {
	var k KeyDash
	k.Step(true, stick(0, -1))
	k.Step(true, stick(1, 0))

	if k.Triggered() {
		t.Error("held key triggered twice")
	}
	if k.Vector() != stick(0, -1) {
		t.Errorf("Vector() = %v, want direction captured at press", k.Vector())
	}
}

func TestKeyDashWithoutStick(t *testing.T) {
	var k KeyDash
	if !k.Step(true, stick(0, 0)) {
		t.Fatal("expected trigger")
	}
	if !k.Vector().IsZero() {
		t.Errorf("Vector() = %v, want zero", k.Vector())
	}
}

func TestDashStateString(t *testing.T) {
	if DashExitedInner.String() != "ExitedInner" {
		t.Errorf("String() = %q", DashExitedInner.String())
	}
	if DashState(42).String() != "DashState(42)" {
		t.Errorf("String() = %q", DashState(42).String())
	}
}
