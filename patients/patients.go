package patients

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("patient not found")

// Patient is owned by the patient directory service and read-only here.
type Patient struct {
	Id           uint64  `json:"id"`
	Name         string  `json:"name"`
	Age          int     `json:"age"`
	MedicalId    string  `json:"medicalId"`
	DeviceId     *uint64 `json:"deviceId,omitempty"`
	DiabetesType string  `json:"diabetesType"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./patients.go -destination=./test/mock_client.go -package test MockClient

// Client resolves patients from the patient directory. Every call is a
// single attempt; callers decide whether a failure is fatal.
type Client interface {
	GetPatient(ctx context.Context, id uint64) (*Patient, error)
	GetPatientByDeviceId(ctx context.Context, deviceId uint64) (*Patient, error)
}
