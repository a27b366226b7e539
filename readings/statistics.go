package readings

import "math"

type glucoseSummary struct {
	Average           float32
	Lowest            float32
	Highest           float32
	LowCount          int64
	HighCount         int64
	StandardDeviation float32
}

// summarize computes the numeric part of the statistics report. Glucose
// levels are stored as 32-bit floats; the mean and deviation are
// accumulated in 64-bit precision and narrowed for the report.
func summarize(readings []*Reading) glucoseSummary {
	summary := glucoseSummary{}
	if len(readings) == 0 {
		return summary
	}

	var sum float64
	summary.Lowest = readings[0].GlucoseLevel
	summary.Highest = readings[0].GlucoseLevel
	for _, reading := range readings {
		sum += float64(reading.GlucoseLevel)
		if reading.GlucoseLevel < summary.Lowest {
			summary.Lowest = reading.GlucoseLevel
		}
		if reading.GlucoseLevel > summary.Highest {
			summary.Highest = reading.GlucoseLevel
		}
		switch reading.Status {
		case StatusLow, StatusCriticalLow:
			summary.LowCount++
		case StatusHigh, StatusCriticalHigh:
			summary.HighCount++
		}
	}

	mean := sum / float64(len(readings))
	summary.Average = float32(mean)
	summary.StandardDeviation = standardDeviation(readings, mean)
	return summary
}

// standardDeviation is the population deviation around the mean. A window
// of one reading has no spread and reports exactly 0.
func standardDeviation(readings []*Reading, mean float64) float32 {
	if len(readings) <= 1 {
		return 0
	}

	var sumOfSquares float64
	for _, reading := range readings {
		diff := float64(reading.GlucoseLevel) - mean
		sumOfSquares += diff * diff
	}

	variance := sumOfSquares / float64(len(readings))
	return float32(math.Sqrt(variance))
}
