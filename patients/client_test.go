package patients_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/insulinpump/readings/patients"
	patientsTest "github.com/insulinpump/readings/patients/test"
)

var _ = Describe("Patients Client", func() {
	var server *httptest.Server
	var client patients.Client
	var handler http.HandlerFunc

	BeforeEach(func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handler(w, r)
		}))

		var err error
		client, err = patients.NewClient(&patients.ClientConfig{
			ServerBaseUrl: server.URL,
			Timeout:       5 * time.Second,
		})
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("GetPatient", func() {
		It("decodes the patient returned by the directory", func() {
			expected := patientsTest.RandomPatient()
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal(fmt.Sprintf("/api/patients/%d", expected.Id)))
				w.Header().Set("Content-Type", "application/json")
				Expect(json.NewEncoder(w).Encode(expected)).To(Succeed())
			}

			patient, err := client.GetPatient(context.Background(), expected.Id)
			Expect(err).ToNot(HaveOccurred())
			Expect(*patient).To(Equal(expected))
		})

		It("returns not found for a 404", func() {
			patient, err := client.GetPatient(context.Background(), 42)
			Expect(err).To(MatchError(patients.ErrNotFound))
			Expect(patient).To(BeNil())
		})

		It("fails on an unexpected response code", func() {
			handler = func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}

			patient, err := client.GetPatient(context.Background(), 42)
			Expect(err).To(HaveOccurred())
			Expect(err).ToNot(MatchError(patients.ErrNotFound))
			Expect(patient).To(BeNil())
		})
	})

	Describe("GetPatientByDeviceId", func() {
		It("resolves the wearer of a device", func() {
			expected := patientsTest.RandomPatient()
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal(fmt.Sprintf("/api/patients/device/%d", *expected.DeviceId)))
				w.Header().Set("Content-Type", "application/json")
				Expect(json.NewEncoder(w).Encode(expected)).To(Succeed())
			}

			patient, err := client.GetPatientByDeviceId(context.Background(), *expected.DeviceId)
			Expect(err).ToNot(HaveOccurred())
			Expect(*patient).To(Equal(expected))
		})

		It("returns not found when nobody wears the device", func() {
			patient, err := client.GetPatientByDeviceId(context.Background(), 42)
			Expect(err).To(MatchError(patients.ErrNotFound))
			Expect(patient).To(BeNil())
		})
	})
})
