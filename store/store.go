// Package store holds the data-store contract the admission services consume
// and its MongoDB implementation.
package store

import (
	"context"
	"errors"

	"HealthHubIPD/models"
)

var (
	// ErrNotFound is returned when a lookup by key matches no document.
	ErrNotFound = errors.New("document not found")
	// ErrDataStoreUnavailable wraps every query or write fault of the backing store.
	ErrDataStoreUnavailable = errors.New("data store unavailable")
	// ErrDuplicateAdmission is returned when admission_id collides with a
	// stored admission.
	ErrDuplicateAdmission = errors.New("duplicate admission id")
)

type PatientDirectory interface {
	// FindPatient returns the first record whose medical_info.patientId equals
	// patientId, or ErrNotFound.
	FindPatient(ctx context.Context, patientId string) (*models.PatientRecord, error)
}

type WardRegistry interface {
	// ListWards returns every ward in the natural order of the backing read.
	ListWards(ctx context.Context) ([]models.Ward, error)
}

type DoctorPool interface {
	// ListDoctors returns every doctor in the natural order of the backing read.
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
}

type AdmissionWriter interface {
	// InsertAdmission writes a single admission. acked is false when the store
	// did not acknowledge the write.
	InsertAdmission(ctx context.Context, admission *models.Admission) (acked bool, err error)
}

type AdmissionReader interface {
	FindAdmission(ctx context.Context, admissionId string) (*models.Admission, error)
}

type RosterWriter interface {
	InsertRoster(ctx context.Context, roster *models.WardRoster) error
}

type Store interface {
	PatientDirectory
	WardRegistry
	DoctorPool
	AdmissionWriter
	AdmissionReader
	RosterWriter
}
