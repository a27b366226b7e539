package test

import (
	"github.com/insulinpump/readings/devices"
	"github.com/insulinpump/readings/pointer"
	"github.com/insulinpump/readings/test"
)

var deviceStatuses = []string{"ACTIVE", "INACTIVE", "MAINTENANCE"}

func RandomDevice() devices.Device {
	return devices.Device{
		Id:           uint64(test.Faker.IntBetween(1, 100000)),
		SerialNo:     test.Faker.UUID().V4(),
		Model:        test.Faker.Company().Name(),
		Manufacturer: test.Faker.Company().Name(),
		Status:       test.Faker.RandomStringElement(deviceStatuses),
	}
}

func RandomAssignedDevice() devices.Device {
	device := RandomDevice()
	device.PatientId = pointer.FromAny(uint64(test.Faker.IntBetween(1, 100000)))
	return device
}
