package test

import (
	"github.com/insulinpump/readings/patients"
	"github.com/insulinpump/readings/pointer"
	"github.com/insulinpump/readings/test"
)

var diabetesTypes = []string{"TYPE_1", "TYPE_2", "GESTATIONAL"}

func RandomPatient() patients.Patient {
	return patients.Patient{
		Id:           uint64(test.Faker.IntBetween(1, 100000)),
		Name:         test.Faker.Person().Name(),
		Age:          test.Faker.IntBetween(8, 80),
		MedicalId:    test.Faker.UUID().V4(),
		DeviceId:     pointer.FromAny(uint64(test.Faker.IntBetween(1, 100000))),
		DiabetesType: test.Faker.RandomStringElement(diabetesTypes),
	}
}

func RandomUnassignedPatient() patients.Patient {
	patient := RandomPatient()
	patient.DeviceId = nil
	return patient
}
