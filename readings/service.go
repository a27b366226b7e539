package readings

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/insulinpump/readings/devices"
	"github.com/insulinpump/readings/patients"
	"github.com/insulinpump/readings/store"
)

type service struct {
	repo     Repository
	devices  devices.Client
	patients patients.Client
	logger   *zap.SugaredLogger
}

var _ Service = &service{}

func NewService(repo Repository, devicesClient devices.Client, patientsClient patients.Client, logger *zap.SugaredLogger) (Service, error) {
	return &service{
		repo:     repo,
		devices:  devicesClient,
		patients: patientsClient,
		logger:   logger,
	}, nil
}

func (s *service) Create(ctx context.Context, reading Reading) (*EnrichedReading, error) {
	if err := validateReading(&reading); err != nil {
		return nil, err
	}

	if _, err := s.devices.GetDevice(ctx, reading.DeviceId); err != nil {
		s.logger.Infow("rejecting reading for unknown device", "deviceId", reading.DeviceId, "error", err)
		return nil, ErrDeviceNotFound
	}

	s.applyDefaults(&reading)

	created, err := s.repo.Create(ctx, reading)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("created reading", "readingId", created.Id.Hex(), "deviceId", created.DeviceId, "status", created.Status)
	return s.enrich(ctx, created), nil
}

func (s *service) Update(ctx context.Context, id string, reading Reading) (*EnrichedReading, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}

	if err := validateReading(&reading); err != nil {
		return nil, err
	}

	// The replacement may move the reading to a different device, so the
	// new device id is validated the same way a create is.
	if _, err := s.devices.GetDevice(ctx, reading.DeviceId); err != nil {
		s.logger.Infow("rejecting reading update for unknown device", "deviceId", reading.DeviceId, "error", err)
		return nil, ErrDeviceNotFound
	}

	s.applyDefaults(&reading)

	updated, err := s.repo.Update(ctx, id, reading)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("updated reading", "readingId", id)
	return s.enrich(ctx, updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infow("deleted reading", "readingId", id)
	return nil
}

func (s *service) Get(ctx context.Context, id string) (*EnrichedReading, error) {
	reading, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, reading), nil
}

func (s *service) List(ctx context.Context, pagination store.Pagination) ([]*EnrichedReading, error) {
	list, err := s.repo.List(ctx, pagination)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) ListByDevice(ctx context.Context, deviceId uint64) ([]*EnrichedReading, error) {
	if _, err := s.devices.GetDevice(ctx, deviceId); err != nil {
		return nil, ErrDeviceNotFound
	}

	list, err := s.repo.ListByDeviceId(ctx, deviceId)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) ListByPatient(ctx context.Context, patientId uint64) ([]*EnrichedReading, error) {
	patient, err := s.patients.GetPatient(ctx, patientId)
	if err != nil {
		s.logger.Infow("unable to resolve patient", "patientId", patientId, "error", err)
		return nil, ErrPatientNotFound
	}

	if patient.DeviceId == nil {
		return nil, ErrPatientHasNoDevice
	}

	list, err := s.repo.ListByDeviceId(ctx, *patient.DeviceId)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) ListByStatus(ctx context.Context, status ReadingStatus) ([]*EnrichedReading, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidReading, status)
	}

	list, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) ListRequiringAction(ctx context.Context) ([]*EnrichedReading, error) {
	list, err := s.repo.ListRequiringAction(ctx)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) GetLatestByDevice(ctx context.Context, deviceId uint64) (*EnrichedReading, error) {
	reading, err := s.repo.GetLatestByDeviceId(ctx, deviceId)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, reading), nil
}

func (s *service) ListByDeviceAndTimeRange(ctx context.Context, deviceId uint64, start, end time.Time) ([]*EnrichedReading, error) {
	list, err := s.repo.ListByDeviceIdAndTimeRange(ctx, deviceId, start, end)
	if err != nil {
		return nil, err
	}
	return s.enrichAll(ctx, list), nil
}

func (s *service) Statistics(ctx context.Context, deviceId uint64, start, end time.Time) (*GlucoseStatistics, error) {
	device, err := s.devices.GetDevice(ctx, deviceId)
	if err != nil {
		s.logger.Infow("unable to resolve device for statistics", "deviceId", deviceId, "error", err)
		return nil, ErrDeviceNotFound
	}

	patientName := UnassignedPatientName
	if patient, err := s.patients.GetPatientByDeviceId(ctx, deviceId); err != nil {
		s.logger.Warnw("unable to resolve patient for statistics", "deviceId", deviceId, "error", err)
	} else {
		patientName = patient.Name
	}

	list, err := s.repo.ListByDeviceIdAndTimeRange(ctx, deviceId, start, end)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNoReadingsInRange
	}

	summary := summarize(list)
	return &GlucoseStatistics{
		DeviceId:            deviceId,
		DeviceSerialNo:      device.SerialNo,
		PatientName:         patientName,
		StartTime:           start,
		EndTime:             end,
		AverageGlucoseLevel: summary.Average,
		LowReadingsCount:    summary.LowCount,
		HighReadingsCount:   summary.HighCount,
		LowestReading:       summary.Lowest,
		HighestReading:      summary.Highest,
		TotalReadings:       len(list),
		StandardDeviation:   summary.StandardDeviation,
	}, nil
}

// applyDefaults fills the computed fields the caller omitted. A
// caller-supplied status wins over the classified one and is not
// re-validated against the glucose level.
func (s *service) applyDefaults(reading *Reading) {
	if reading.Status == "" {
		reading.Status = Classify(reading.GlucoseLevel)
	}
	if reading.RequiresAction == nil {
		requiresAction := StatusRequiresAction(reading.Status)
		reading.RequiresAction = &requiresAction
	}
	if reading.Timestamp.IsZero() {
		reading.Timestamp = time.Now().UTC()
	}
}

// enrich attaches the device and patient snapshots with two best-effort
// lookups. Neither failure aborts the operation; the snapshot is simply
// left absent. The device fetched here is intentionally a fresh lookup
// even right after create validated the same id.
func (s *service) enrich(ctx context.Context, reading *Reading) *EnrichedReading {
	enriched := &EnrichedReading{Reading: *reading}

	device, err := s.devices.GetDevice(ctx, reading.DeviceId)
	if err != nil {
		s.logger.Warnw("unable to fetch device for reading", "readingId", reading.Id, "deviceId", reading.DeviceId, "error", err)
		return enriched
	}
	enriched.Device = device

	if device.PatientId == nil {
		return enriched
	}

	patient, err := s.patients.GetPatient(ctx, *device.PatientId)
	if err != nil {
		s.logger.Warnw("unable to fetch patient for reading", "readingId", reading.Id, "patientId", *device.PatientId, "error", err)
		return enriched
	}
	enriched.Patient = patient

	return enriched
}

func (s *service) enrichAll(ctx context.Context, list []*Reading) []*EnrichedReading {
	enriched := make([]*EnrichedReading, 0, len(list))
	for _, reading := range list {
		enriched = append(enriched, s.enrich(ctx, reading))
	}
	return enriched
}

func validateReading(reading *Reading) error {
	if reading.GlucoseLevel <= 0 {
		return fmt.Errorf("%w: glucose level must be positive", ErrInvalidReading)
	}
	if reading.DeviceId == 0 {
		return fmt.Errorf("%w: device id is required", ErrInvalidReading)
	}
	if reading.Status != "" && !reading.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidReading, reading.Status)
	}
	if reading.InsulinDose != nil && *reading.InsulinDose < 0 {
		return fmt.Errorf("%w: insulin dose must not be negative", ErrInvalidReading)
	}
	if reading.CarbIntake != nil && *reading.CarbIntake < 0 {
		return fmt.Errorf("%w: carb intake must not be negative", ErrInvalidReading)
	}
	return nil
}
