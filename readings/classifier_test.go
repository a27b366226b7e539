package readings_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/insulinpump/readings/readings"
)

var _ = Describe("Classify", func() {
	DescribeTable("classifies glucose levels into severity buckets",
		func(glucoseLevel float32, expected readings.ReadingStatus) {
			Expect(readings.Classify(glucoseLevel)).To(Equal(expected))
		},
		Entry("well below the critical low threshold", float32(20), readings.StatusCriticalLow),
		Entry("just below the critical low threshold", float32(49.99), readings.StatusCriticalLow),
		Entry("exactly the critical low threshold", float32(50), readings.StatusLow),
		Entry("just below the low threshold", float32(69.99), readings.StatusLow),
		Entry("exactly the low threshold", float32(70), readings.StatusNormal),
		Entry("mid normal range", float32(120), readings.StatusNormal),
		Entry("exactly the high threshold", float32(180), readings.StatusNormal),
		Entry("just above the high threshold", float32(180.01), readings.StatusHigh),
		Entry("exactly the critical high threshold", float32(250), readings.StatusHigh),
		Entry("just above the critical high threshold", float32(250.01), readings.StatusCriticalHigh),
		Entry("well above the critical high threshold", float32(400), readings.StatusCriticalHigh),
	)

	It("never classifies values below the critical low threshold as normal", func() {
		for glucose := float32(1); glucose < 50; glucose += 0.5 {
			Expect(readings.Classify(glucose)).To(Equal(readings.StatusCriticalLow))
		}
	})

	It("never classifies values above the critical high threshold as normal", func() {
		for glucose := float32(250.5); glucose < 500; glucose += 0.5 {
			Expect(readings.Classify(glucose)).To(Equal(readings.StatusCriticalHigh))
		}
	})
})

var _ = Describe("StatusRequiresAction", func() {
	DescribeTable("requires action for critical states only",
		func(status readings.ReadingStatus, expected bool) {
			Expect(readings.StatusRequiresAction(status)).To(Equal(expected))
		},
		Entry("critical low", readings.StatusCriticalLow, true),
		Entry("low", readings.StatusLow, false),
		Entry("normal", readings.StatusNormal, false),
		Entry("high", readings.StatusHigh, false),
		Entry("critical high", readings.StatusCriticalHigh, true),
	)
})

var _ = Describe("ParseReadingStatus", func() {
	It("accepts every known status", func() {
		for _, value := range []string{"CRITICAL_LOW", "LOW", "NORMAL", "HIGH", "CRITICAL_HIGH"} {
			status, err := readings.ParseReadingStatus(value)
			Expect(err).ToNot(HaveOccurred())
			Expect(string(status)).To(Equal(value))
		}
	})

	It("rejects unknown values", func() {
		_, err := readings.ParseReadingStatus("ELEVATED")
		Expect(err).To(MatchError(readings.ErrInvalidReading))
	})
})
