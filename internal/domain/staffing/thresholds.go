package staffing

type Level int

const (
	LevelNovice Level = 1
	LevelJunior Level = 2
	LevelMiddle Level = 3
	LevelSenior Level = 4
	LevelExpert Level = 5
)

func (l Level) String() string {
	switch l {
	case LevelNovice:
		return "NOVICE"
	case LevelJunior:
		return "JUNIOR"
	case LevelMiddle:
		return "MIDDLE"
	case LevelSenior:
		return "SENIOR"
	case LevelExpert:
		return "EXPERT"
	default:
		return "UNKNOWN"
	}
}

// Thresholds holds the minimum cumulative person-days required for each level.
// Novice is 0 by convention. The values are admin-editable configuration and
// are passed into the inference engine explicitly, never read from globals.
type Thresholds struct {
	Novice float64
	Junior float64
	Middle float64
	Senior float64
	Expert float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Novice: 0, Junior: 30, Middle: 180, Senior: 540, Expert: 1080}
}

func (t Thresholds) MinDays(l Level) float64 {
	switch l {
	case LevelJunior:
		return t.Junior
	case LevelMiddle:
		return t.Middle
	case LevelSenior:
		return t.Senior
	case LevelExpert:
		return t.Expert
	default:
		return t.Novice
	}
}

// LevelFor returns the highest level whose cutoff is met by days, scanning
// EXPERT down to NOVICE. Meeting a cutoff exactly counts. Falls back to
// NOVICE when no cutoff is met.
func (t Thresholds) LevelFor(days float64) Level {
	for _, l := range []Level{LevelExpert, LevelSenior, LevelMiddle, LevelJunior} {
		if days >= t.MinDays(l) {
			return l
		}
	}
	return LevelNovice
}
