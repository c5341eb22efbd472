package staffing

import "testing"

func TestThresholds_LevelFor(t *testing.T) {
	th := Thresholds{Novice: 0, Junior: 1, Middle: 3, Senior: 5, Expert: 10}

	cases := []struct {
		days float64
		want Level
	}{
		{0, LevelNovice},
		{0.5, LevelNovice},
		{1, LevelJunior},
		{1.5, LevelJunior},
		{2.999, LevelJunior},
		{3, LevelMiddle},
		{5, LevelSenior},
		{9.999, LevelSenior},
		{10, LevelExpert},
		{10000, LevelExpert},
	}
	for _, c := range cases {
		if got := th.LevelFor(c.days); got != c.want {
			t.Fatalf("LevelFor(%v) = %v, want %v", c.days, got, c.want)
		}
	}
}

func TestThresholds_LevelFor_Monotonic(t *testing.T) {
	th := DefaultThresholds()
	prev := LevelNovice
	for d := 0.0; d <= 1200; d += 7.5 {
		l := th.LevelFor(d)
		if l < prev {
			t.Fatalf("level decreased from %v to %v at %v days", prev, l, d)
		}
		prev = l
	}
}

func TestThresholds_LevelFor_NonMonotonicConfig(t *testing.T) {
	// Cutoffs are taken as given; the first met on the EXPERT->NOVICE scan
	// wins even when the configuration is inconsistent.
	th := Thresholds{Novice: 0, Junior: 50, Middle: 10, Senior: 540, Expert: 1080}
	if got := th.LevelFor(20); got != LevelMiddle {
		t.Fatalf("LevelFor(20) = %v, want %v", got, LevelMiddle)
	}
}

func TestLevel_String(t *testing.T) {
	if LevelJunior.String() != "JUNIOR" || LevelExpert.String() != "EXPERT" {
		t.Fatalf("unexpected level names: %v %v", LevelJunior, LevelExpert)
	}
	if Level(0).String() != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN for out-of-range level")
	}
}
