package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/insulinpump/readings/devices"
	devicesTest "github.com/insulinpump/readings/devices/test"
	"github.com/insulinpump/readings/patients"
	patientsTest "github.com/insulinpump/readings/patients/test"
	"github.com/insulinpump/readings/readings"
	readingsTest "github.com/insulinpump/readings/readings/test"
	dbTest "github.com/insulinpump/readings/store/test"
)

// The directory stubs serve a single device and its wearer the way the
// real services do, so the full create and statistics paths run against
// actual HTTP clients and a real database.
var _ = Describe("Readings Service", func() {
	var service readings.Service
	var device devices.Device
	var patient patients.Patient
	var deviceServer *httptest.Server
	var patientServer *httptest.Server

	BeforeEach(func() {
		device = devicesTest.RandomAssignedDevice()
		patient = patientsTest.RandomPatient()
		patient.Id = *device.PatientId
		patient.DeviceId = &device.Id

		deviceServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != fmt.Sprintf("/api/devices/%d", device.Id) {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			Expect(json.NewEncoder(w).Encode(device)).To(Succeed())
		}))
		patientServer = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case fmt.Sprintf("/api/patients/%d", patient.Id),
				fmt.Sprintf("/api/patients/device/%d", device.Id):
				w.Header().Set("Content-Type", "application/json")
				Expect(json.NewEncoder(w).Encode(patient)).To(Succeed())
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		deviceClient, err := devices.NewClient(&devices.ClientConfig{
			ServerBaseUrl: deviceServer.URL,
			Timeout:       5 * time.Second,
		})
		Expect(err).ToNot(HaveOccurred())
		patientClient, err := patients.NewClient(&patients.ClientConfig{
			ServerBaseUrl: patientServer.URL,
			Timeout:       5 * time.Second,
		})
		Expect(err).ToNot(HaveOccurred())

		lifecycle := fxtest.NewLifecycle(GinkgoT())
		repo, err := readings.NewRepository(dbTest.GetTestDatabase(), lifecycle)
		Expect(err).ToNot(HaveOccurred())
		lifecycle.RequireStart()

		service, err = readings.NewService(repo, deviceClient, patientClient, zap.NewNop().Sugar())
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		deviceServer.Close()
		patientServer.Close()

		collection := dbTest.GetTestDatabase().Collection("readings")
		_, err := collection.DeleteMany(context.Background(), bson.M{})
		Expect(err).ToNot(HaveOccurred())
	})

	It("creates, classifies and enriches a reading end to end", func() {
		reading := readingsTest.RandomReadingForDevice(device.Id)
		reading.GlucoseLevel = 42
		reading.Status = ""
		reading.RequiresAction = nil

		created, err := service.Create(context.Background(), reading)
		Expect(err).ToNot(HaveOccurred())
		Expect(created.Id).ToNot(BeNil())
		Expect(created.Status).To(Equal(readings.StatusCriticalLow))
		Expect(created.Device).ToNot(BeNil())
		Expect(created.Device.SerialNo).To(Equal(device.SerialNo))
		Expect(created.Patient).ToNot(BeNil())
		Expect(created.Patient.Name).To(Equal(patient.Name))

		fetched, err := service.Get(context.Background(), created.Id.Hex())
		Expect(err).ToNot(HaveOccurred())
		Expect(fetched.GlucoseLevel).To(Equal(float32(42)))
	})

	It("rejects a reading for a device the directory does not know", func() {
		reading := readingsTest.RandomReadingForDevice(device.Id + 1)

		_, err := service.Create(context.Background(), reading)
		Expect(err).To(MatchError(readings.ErrDeviceNotFound))
	})

	It("computes statistics over persisted readings", func() {
		end := time.Now().UTC().Truncate(time.Millisecond)
		start := end.Add(-24 * time.Hour)
		for i, level := range []float32{100, 120, 140} {
			reading := readingsTest.ReadingWithGlucoseLevel(device.Id, level)
			reading.Timestamp = start.Add(time.Duration(i+1) * time.Hour)
			_, err := service.Create(context.Background(), reading)
			Expect(err).ToNot(HaveOccurred())
		}

		statistics, err := service.Statistics(context.Background(), device.Id, start, end)
		Expect(err).ToNot(HaveOccurred())
		Expect(statistics.PatientName).To(Equal(patient.Name))
		Expect(statistics.TotalReadings).To(Equal(3))
		Expect(statistics.AverageGlucoseLevel).To(BeNumerically("~", 120, 0.001))
		Expect(statistics.StandardDeviation).To(BeNumerically("~", 16.3299, 0.001))
	})
})
