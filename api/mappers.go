package api

import (
	stderrors "errors"
	"net/http"

	"github.com/insulinpump/readings/devices"
	"github.com/insulinpump/readings/errors"
	"github.com/insulinpump/readings/patients"
	"github.com/insulinpump/readings/readings"
)

func NewReading(dto ReadingCreateDto) (readings.Reading, error) {
	reading := readings.Reading{
		Notes:          dto.Notes,
		InsulinDose:    dto.InsulinDose,
		CarbIntake:     dto.CarbIntake,
		ManualReading:  dto.ManualReading,
		RequiresAction: dto.RequiresAction,
	}
	if dto.GlucoseLevel != nil {
		reading.GlucoseLevel = *dto.GlucoseLevel
	}
	if dto.DeviceId != nil {
		reading.DeviceId = *dto.DeviceId
	}
	if dto.Timestamp != nil {
		reading.Timestamp = *dto.Timestamp
	}
	if dto.Status != nil {
		status, err := readings.ParseReadingStatus(*dto.Status)
		if err != nil {
			return readings.Reading{}, errors.WithCode(http.StatusBadRequest, err)
		}
		reading.Status = status
	}
	return reading, nil
}

func NewReadingDetailsDto(enriched *readings.EnrichedReading) ReadingDetailsDto {
	dto := ReadingDetailsDto{
		GlucoseLevel:   enriched.GlucoseLevel,
		Timestamp:      enriched.Timestamp,
		DeviceId:       enriched.DeviceId,
		Status:         string(enriched.Status),
		Notes:          enriched.Notes,
		InsulinDose:    enriched.InsulinDose,
		CarbIntake:     enriched.CarbIntake,
		ManualReading:  enriched.ManualReading,
		RequiresAction: enriched.RequiresAction,
	}
	if enriched.Id != nil {
		dto.Id = enriched.Id.Hex()
	}
	if enriched.Device != nil {
		dto.Device = NewDeviceDto(enriched.Device)
	}
	if enriched.Patient != nil {
		dto.Patient = NewPatientDto(enriched.Patient)
	}
	return dto
}

func NewReadingDetailsDtos(list []*readings.EnrichedReading) []ReadingDetailsDto {
	dtos := make([]ReadingDetailsDto, 0, len(list))
	for _, enriched := range list {
		dtos = append(dtos, NewReadingDetailsDto(enriched))
	}
	return dtos
}

func NewDeviceDto(device *devices.Device) *DeviceDto {
	return &DeviceDto{
		Id:           device.Id,
		SerialNo:     device.SerialNo,
		Model:        device.Model,
		Manufacturer: device.Manufacturer,
		Status:       device.Status,
		PatientId:    device.PatientId,
	}
}

func NewPatientDto(patient *patients.Patient) *PatientDto {
	return &PatientDto{
		Id:           patient.Id,
		Name:         patient.Name,
		Age:          patient.Age,
		MedicalId:    patient.MedicalId,
		DeviceId:     patient.DeviceId,
		DiabetesType: patient.DiabetesType,
	}
}

func NewGlucoseStatisticsDto(statistics *readings.GlucoseStatistics) GlucoseStatisticsDto {
	return GlucoseStatisticsDto{
		DeviceId:            statistics.DeviceId,
		DeviceSerialNo:      statistics.DeviceSerialNo,
		PatientName:         statistics.PatientName,
		StartTime:           statistics.StartTime,
		EndTime:             statistics.EndTime,
		AverageGlucoseLevel: statistics.AverageGlucoseLevel,
		LowReadingsCount:    statistics.LowReadingsCount,
		HighReadingsCount:   statistics.HighReadingsCount,
		LowestReading:       statistics.LowestReading,
		HighestReading:      statistics.HighestReading,
		TotalReadings:       statistics.TotalReadings,
		StandardDeviation:   statistics.StandardDeviation,
	}
}

// domainError translates the service's named failure conditions to
// protocol status codes. Anything unrecognized surfaces as a 500 through
// the default error handler.
func domainError(err error) error {
	switch {
	case stderrors.Is(err, readings.ErrNotFound),
		stderrors.Is(err, readings.ErrDeviceNotFound),
		stderrors.Is(err, readings.ErrPatientNotFound):
		return errors.WithCode(http.StatusNotFound, err)
	case stderrors.Is(err, readings.ErrPatientHasNoDevice),
		stderrors.Is(err, readings.ErrNoReadingsInRange):
		return errors.WithCode(http.StatusUnprocessableEntity, err)
	case stderrors.Is(err, readings.ErrInvalidReading):
		return errors.WithCode(http.StatusBadRequest, err)
	}
	return err
}
