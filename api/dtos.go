package api

import "time"

type ReadingCreateDto struct {
	GlucoseLevel   *float32   `json:"glucoseLevel"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
	DeviceId       *uint64    `json:"deviceId"`
	Status         *string    `json:"status,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	InsulinDose    *float32   `json:"insulinDose,omitempty"`
	CarbIntake     *float32   `json:"carbIntake,omitempty"`
	ManualReading  *bool      `json:"manualReading,omitempty"`
	RequiresAction *bool      `json:"requiresAction,omitempty"`
}

type ReadingDetailsDto struct {
	Id             string      `json:"id"`
	GlucoseLevel   float32     `json:"glucoseLevel"`
	Timestamp      time.Time   `json:"timestamp"`
	DeviceId       uint64      `json:"deviceId"`
	Status         string      `json:"status"`
	Notes          *string     `json:"notes,omitempty"`
	InsulinDose    *float32    `json:"insulinDose,omitempty"`
	CarbIntake     *float32    `json:"carbIntake,omitempty"`
	ManualReading  *bool       `json:"manualReading,omitempty"`
	RequiresAction *bool       `json:"requiresAction,omitempty"`
	Device         *DeviceDto  `json:"device,omitempty"`
	Patient        *PatientDto `json:"patient,omitempty"`
}

type DeviceDto struct {
	Id           uint64  `json:"id"`
	SerialNo     string  `json:"serialNo"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	Status       string  `json:"status"`
	PatientId    *uint64 `json:"patientId,omitempty"`
}

type PatientDto struct {
	Id           uint64  `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	MedicalId    string  `json:"medicalId"`
	DeviceId     *uint64 `json:"deviceId,omitempty"`
	DiabetesType string  `json:"diabetesType"`
}

type GlucoseStatisticsDto struct {
	DeviceId            uint64    `json:"deviceId"`
	DeviceSerialNo      string    `json:"deviceSerialNo"`
	PatientName         string    `json:"patientName"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	AverageGlucoseLevel float32   `json:"averageGlucoseLevel"`
	LowReadingsCount    int64     `json:"lowReadingsCount"`
	HighReadingsCount   int64     `json:"highReadingsCount"`
	LowestReading       float32   `json:"lowestReading"`
	HighestReading      float32   `json:"highestReading"`
	TotalReadings       int       `json:"totalReadings"`
	StandardDeviation   float32   `json:"standardDeviation"`
}
