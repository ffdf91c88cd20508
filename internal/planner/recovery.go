package planner

import "fit-planner/internal/model"

// ClassifyRecovery derives the readiness score from the day's check-in.
// Unreported soreness counts as 0 and unreported energy as 10.
func ClassifyRecovery(log model.DailyLog) model.RecoveryScore {
	soreness := log.SorenessOrDefault()
	energy := log.EnergyOrDefault()
	switch {
	case soreness > 7 || energy < 4:
		return model.RecoveryLow
	case soreness > 4:
		return model.RecoveryMedium
	default:
		return model.RecoveryHigh
	}
}
