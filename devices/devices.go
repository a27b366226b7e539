package devices

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("device not found")

// Device is owned by the device directory service. It is read-only from
// this service's perspective and never cached.
type Device struct {
	Id           uint64  `json:"id"`
	SerialNo     string  `json:"serialNo"`
	Model        string  `json:"model"`
	Manufacturer string  `json:"manufacturer"`
	Status       string  `json:"status"`
	PatientId    *uint64 `json:"patientId,omitempty"`
}

//go:generate mockgen --build_flags=--mod=mod -source=./devices.go -destination=./test/mock_client.go -package test MockClient

// Client resolves devices from the device directory. Every call is a
// single attempt; callers decide whether a failure is fatal.
type Client interface {
	GetDevice(ctx context.Context, id uint64) (*Device, error)
	GetDeviceByPatientId(ctx context.Context, patientId uint64) (*Device, error)
}
