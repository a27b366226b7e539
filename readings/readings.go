package readings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/insulinpump/readings/devices"
	"github.com/insulinpump/readings/patients"
	"github.com/insulinpump/readings/store"
)

var (
	ErrNotFound           = errors.New("reading not found")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrPatientHasNoDevice = errors.New("patient has no assigned device")
	ErrNoReadingsInRange  = errors.New("no readings available for the requested time range")
	ErrInvalidReading     = errors.New("invalid reading")
)

type ReadingStatus string

const (
	StatusCriticalLow  ReadingStatus = "CRITICAL_LOW"
	StatusLow          ReadingStatus = "LOW"
	StatusNormal       ReadingStatus = "NORMAL"
	StatusHigh         ReadingStatus = "HIGH"
	StatusCriticalHigh ReadingStatus = "CRITICAL_HIGH"
)

func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusCriticalLow, StatusLow, StatusNormal, StatusHigh, StatusCriticalHigh:
		return true
	}
	return false
}

func ParseReadingStatus(value string) (ReadingStatus, error) {
	status := ReadingStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidReading, value)
	}
	return status, nil
}

// Reading is a single glucose measurement reported by an insulin pump.
// Glucose levels are stored in mg/dL.
type Reading struct {
	Id             *primitive.ObjectID `bson:"_id,omitempty"`
	GlucoseLevel   float32             `bson:"glucoseLevel"`
	Timestamp      time.Time           `bson:"timestamp"`
	DeviceId       uint64              `bson:"deviceId"`
	Status         ReadingStatus       `bson:"status"`
	Notes          *string             `bson:"notes,omitempty"`
	InsulinDose    *float32            `bson:"insulinDose,omitempty"`
	CarbIntake     *float32            `bson:"carbIntake,omitempty"`
	ManualReading  *bool               `bson:"manualReading,omitempty"`
	RequiresAction *bool               `bson:"requiresAction,omitempty"`
}

// EnrichedReading carries the device and patient snapshots resolved for a
// response. Either snapshot may be absent when the corresponding directory
// lookup failed; it is never persisted.
type EnrichedReading struct {
	Reading
	Device  *devices.Device
	Patient *patients.Patient
}

// UnassignedPatientName is reported in statistics when the device has no
// resolvable patient.
const UnassignedPatientName = "unassigned"

type GlucoseStatistics struct {
	DeviceId            uint64
	DeviceSerialNo      string
	PatientName         string
	StartTime           time.Time
	EndTime             time.Time
	AverageGlucoseLevel float32
	LowReadingsCount    int64
	HighReadingsCount   int64
	LowestReading       float32
	HighestReading      float32
	TotalReadings       int
	StandardDeviation   float32
}

//go:generate mockgen --build_flags=--mod=mod -source=./readings.go -destination=./test/mock_service.go -package test MockService

type Service interface {
	Create(ctx context.Context, reading Reading) (*EnrichedReading, error)
	Update(ctx context.Context, id string, reading Reading) (*EnrichedReading, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*EnrichedReading, error)
	List(ctx context.Context, pagination store.Pagination) ([]*EnrichedReading, error)
	ListByDevice(ctx context.Context, deviceId uint64) ([]*EnrichedReading, error)
	ListByPatient(ctx context.Context, patientId uint64) ([]*EnrichedReading, error)
	ListByStatus(ctx context.Context, status ReadingStatus) ([]*EnrichedReading, error)
	ListRequiringAction(ctx context.Context) ([]*EnrichedReading, error)
	GetLatestByDevice(ctx context.Context, deviceId uint64) (*EnrichedReading, error)
	ListByDeviceAndTimeRange(ctx context.Context, deviceId uint64, start, end time.Time) ([]*EnrichedReading, error)
	Statistics(ctx context.Context, deviceId uint64, start, end time.Time) (*GlucoseStatistics, error)
}
