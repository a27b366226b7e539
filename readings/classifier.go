package readings

// Classification thresholds in mg/dL. Lows use strict less-than and highs
// strict greater-than, so 70 and 180 are both NORMAL.
const (
	criticalLowThreshold  float32 = 50
	lowThreshold          float32 = 70
	highThreshold         float32 = 180
	criticalHighThreshold float32 = 250
)

func Classify(glucoseLevel float32) ReadingStatus {
	switch {
	case glucoseLevel < criticalLowThreshold:
		return StatusCriticalLow
	case glucoseLevel < lowThreshold:
		return StatusLow
	case glucoseLevel > criticalHighThreshold:
		return StatusCriticalHigh
	case glucoseLevel > highThreshold:
		return StatusHigh
	default:
		return StatusNormal
	}
}

func StatusRequiresAction(status ReadingStatus) bool {
	return status == StatusCriticalLow || status == StatusCriticalHigh
}
