package readings_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/insulinpump/readings/devices"
	devicesTest "github.com/insulinpump/readings/devices/test"
	patientsTest "github.com/insulinpump/readings/patients/test"
	"github.com/insulinpump/readings/readings"
	readingsTest "github.com/insulinpump/readings/readings/test"
)

var _ = Describe("Glucose Statistics", func() {
	var service readings.Service
	var repo *readingsTest.MockRepository
	var devicesClient *devicesTest.MockClient
	var patientsClient *patientsTest.MockClient
	var ctrl *gomock.Controller

	var device devices.Device
	var start, end time.Time

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repo = readingsTest.NewMockRepository(ctrl)
		devicesClient = devicesTest.NewMockClient(ctrl)
		patientsClient = patientsTest.NewMockClient(ctrl)

		var err error
		service, err = readings.NewService(repo, devicesClient, patientsClient, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())

		device = devicesTest.RandomDevice()
		end = time.Now().UTC().Truncate(time.Millisecond)
		start = end.Add(-24 * time.Hour)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	readingsInWindow := func(levels ...float32) []*readings.Reading {
		list := make([]*readings.Reading, 0, len(levels))
		for _, level := range levels {
			reading := readingsTest.ReadingWithGlucoseLevel(device.Id, level)
			reading.Timestamp = start.Add(time.Duration(len(list)+1) * time.Hour)
			list = append(list, &reading)
		}
		return list
	}

	It("fails when the device cannot be resolved", func() {
		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(nil, devices.ErrNotFound)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).To(MatchError(readings.ErrDeviceNotFound))
		Expect(result).To(BeNil())
	})

	It("fails when the window holds no readings", func() {
		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(&device, nil)
		patientsClient.EXPECT().
			GetPatientByDeviceId(gomock.Any(), gomock.Eq(device.Id)).
			Return(nil, context.DeadlineExceeded)
		repo.EXPECT().
			ListByDeviceIdAndTimeRange(gomock.Any(), gomock.Eq(device.Id), gomock.Eq(start), gomock.Eq(end)).
			Return(nil, nil)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).To(MatchError(readings.ErrNoReadingsInRange))
		Expect(result).To(BeNil())
	})

	It("computes the aggregates over the window", func() {
		patient := patientsTest.RandomPatient()
		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(&device, nil)
		patientsClient.EXPECT().
			GetPatientByDeviceId(gomock.Any(), gomock.Eq(device.Id)).
			Return(&patient, nil)
		repo.EXPECT().
			ListByDeviceIdAndTimeRange(gomock.Any(), gomock.Eq(device.Id), gomock.Eq(start), gomock.Eq(end)).
			Return(readingsInWindow(100, 120, 140), nil)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.DeviceId).To(Equal(device.Id))
		Expect(result.DeviceSerialNo).To(Equal(device.SerialNo))
		Expect(result.PatientName).To(Equal(patient.Name))
		Expect(result.TotalReadings).To(Equal(3))
		Expect(result.AverageGlucoseLevel).To(BeNumerically("~", 120, 0.001))
		Expect(result.LowestReading).To(Equal(float32(100)))
		Expect(result.HighestReading).To(Equal(float32(140)))
		Expect(result.LowReadingsCount).To(Equal(int64(0)))
		Expect(result.HighReadingsCount).To(Equal(int64(0)))
		Expect(result.StandardDeviation).To(BeNumerically("~", 16.3299, 0.001))
	})

	It("reports a zero standard deviation for a single reading", func() {
		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(&device, nil)
		patientsClient.EXPECT().
			GetPatientByDeviceId(gomock.Any(), gomock.Eq(device.Id)).
			Return(nil, context.DeadlineExceeded)
		repo.EXPECT().
			ListByDeviceIdAndTimeRange(gomock.Any(), gomock.Eq(device.Id), gomock.Eq(start), gomock.Eq(end)).
			Return(readingsInWindow(187.5), nil)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.TotalReadings).To(Equal(1))
		Expect(result.AverageGlucoseLevel).To(Equal(float32(187.5)))
		Expect(result.StandardDeviation).To(Equal(float32(0)))
	})

	It("counts breaches by stored status rather than by re-classifying", func() {
		list := readingsInWindow(45, 60, 120, 200, 300)
		// A stored status wins even when it disagrees with the level.
		list[2].Status = readings.StatusLow

		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(&device, nil)
		patientsClient.EXPECT().
			GetPatientByDeviceId(gomock.Any(), gomock.Eq(device.Id)).
			Return(nil, context.DeadlineExceeded)
		repo.EXPECT().
			ListByDeviceIdAndTimeRange(gomock.Any(), gomock.Eq(device.Id), gomock.Eq(start), gomock.Eq(end)).
			Return(list, nil)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.LowReadingsCount).To(Equal(int64(3)))
		Expect(result.HighReadingsCount).To(Equal(int64(2)))
	})

	It("falls back to the unassigned placeholder when no patient wears the device", func() {
		devicesClient.EXPECT().
			GetDevice(gomock.Any(), gomock.Eq(device.Id)).
			Return(&device, nil)
		patientsClient.EXPECT().
			GetPatientByDeviceId(gomock.Any(), gomock.Eq(device.Id)).
			Return(nil, context.DeadlineExceeded)
		repo.EXPECT().
			ListByDeviceIdAndTimeRange(gomock.Any(), gomock.Eq(device.Id), gomock.Eq(start), gomock.Eq(end)).
			Return(readingsInWindow(110), nil)

		result, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.PatientName).To(Equal(readings.UnassignedPatientName))
	})
})
