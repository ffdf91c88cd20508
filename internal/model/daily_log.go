package model

// DailyLog holds one calendar day of self-reported signals and intake counters.
// Soreness and Energy are nil until the user reports them.
type DailyLog struct {
	Soreness        *int    `json:"soreness,omitempty"`
	Energy          *int    `json:"energy,omitempty"`
	ProteinConsumed float64 `json:"proteinConsumed"`
	WaterConsumed   float64 `json:"waterConsumed"`
	StepsTaken      int     `json:"stepsTaken"`
}

// SorenessOrDefault substitutes 0 for an unreported value.
func (l DailyLog) SorenessOrDefault() int {
	if l.Soreness == nil {
		return 0
	}
	return *l.Soreness
}

// EnergyOrDefault substitutes 10 for an unreported value.
func (l DailyLog) EnergyOrDefault() int {
	if l.Energy == nil {
		return 10
	}
	return *l.Energy
}

// Clone copies the optional fields so the result shares no pointers with l.
func (l DailyLog) Clone() DailyLog {
	out := l
	if l.Soreness != nil {
		v := *l.Soreness
		out.Soreness = &v
	}
	if l.Energy != nil {
		v := *l.Energy
		out.Energy = &v
	}
	return out
}
