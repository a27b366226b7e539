package test

import (
	"time"

	"github.com/insulinpump/readings/pointer"
	"github.com/insulinpump/readings/readings"
	"github.com/insulinpump/readings/test"
)

func RandomReading() readings.Reading {
	glucose := test.Faker.Float32(2, 40, 300)
	status := readings.Classify(glucose)
	return readings.Reading{
		GlucoseLevel:   glucose,
		Timestamp:      randomTimestamp(),
		DeviceId:       uint64(test.Faker.IntBetween(1, 100000)),
		Status:         status,
		Notes:          pointer.FromAny(test.Faker.Lorem().Sentence(4)),
		InsulinDose:    pointer.FromAny(test.Faker.Float32(2, 0, 10)),
		CarbIntake:     pointer.FromAny(test.Faker.Float32(2, 0, 100)),
		ManualReading:  pointer.FromAny(test.Faker.Bool()),
		RequiresAction: pointer.FromAny(readings.StatusRequiresAction(status)),
	}
}

func RandomReadingForDevice(deviceId uint64) readings.Reading {
	reading := RandomReading()
	reading.DeviceId = deviceId
	return reading
}

func ReadingWithGlucoseLevel(deviceId uint64, glucose float32) readings.Reading {
	reading := RandomReadingForDevice(deviceId)
	reading.GlucoseLevel = glucose
	reading.Status = readings.Classify(glucose)
	reading.RequiresAction = pointer.FromAny(readings.StatusRequiresAction(reading.Status))
	return reading
}

// Mongo stores timestamps with millisecond precision, so fixtures are
// truncated to survive a round trip through the database.
func randomTimestamp() time.Time {
	offset := time.Duration(test.Faker.IntBetween(1, 72)) * time.Hour
	return time.Now().UTC().Add(-offset).Truncate(time.Millisecond)
}
