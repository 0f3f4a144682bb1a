package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HealthHubIPD/cache"
	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const INSERT_FAILURE_REASON string = "db insertion failure"

// AdmissionService admits patients into IPD wards. It keeps no state between
// calls besides its injected collaborators.
type AdmissionService struct {
	store store.Store
	cache cache.Cache
	now   func() time.Time
	newId func() string
}

type Option func(*AdmissionService)

func WithClock(now func() time.Time) Option {
	return func(s *AdmissionService) { s.now = now }
}

func WithIdGenerator(newId func() string) Option {
	return func(s *AdmissionService) { s.newId = newId }
}

func NewAdmissionService(st store.Store, c cache.Cache, opts ...Option) *AdmissionService {
	if c == nil {
		c = cache.Noop{}
	}
	s := &AdmissionService{
		store: st,
		cache: c,
		now:   time.Now,
		newId: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
* Lookup the patient, a missing patient is a failed result and not an error
* Validate the record fields copied into the admission
* Assign ward from illness_primary, then a doctor of that ward available today
* Generate admission id and insert the record once
* Cache the new admission, cache failure is only logged
 */
func (s *AdmissionService) CreateAdmission(ctx context.Context, patientId string) (*models.AdmissionResult, error) {
	patient, err := LookupPatient(ctx, s.store, patientId)
	if errors.Is(err, ErrPatientNotFound) {
		return models.AdmissionFailure(models.CodePatientNotFound,
			fmt.Sprintf("No patient found with patient id %s", patientId)), nil
	}
	if err != nil {
		log.Error().Err(err).Str("patientId", patientId).Msg("Error from lookupPatient")
		return nil, err
	}

	if err := validatePatient(patient); err != nil {
		log.Error().Err(err).Str("patientId", patientId).Msg("Error from validatePatient")
		return nil, err
	}
	medical := patient.MedicalInfo
	basic := patient.BasicInfo

	ward, err := AssignWard(ctx, s.store, medical.IllnessPrimary)
	if errors.Is(err, ErrNoWardMatch) {
		return models.AdmissionFailure(models.CodeNoWardMatch,
			fmt.Sprintf("No ward matches illness %q of patient id %s", medical.IllnessPrimary, patientId)), nil
	}
	if err != nil {
		log.Error().Err(err).Str("patientId", patientId).Msg("Error from assignWard")
		return nil, err
	}

	now := s.now()
	doctor, err := AssignDoctor(ctx, s.store, ward.Ward, now)
	if errors.Is(err, ErrNoDoctorAvailable) {
		return models.AdmissionFailure(models.CodeNoDoctorAvailable,
			fmt.Sprintf("No doctor available in ward %s on %s", ward.Ward, DateKey(now))), nil
	}
	if err != nil {
		log.Error().Err(err).Str("ward", ward.Ward).Msg("Error from assignDoctor")
		return nil, err
	}

	admission := &models.Admission{
		AdmissionId: s.newId(),
		AdmittedOn:  now.UTC(),
		PatientId:   patientId,
		AssignedDoctor: models.AssignedDoctor{
			DoctorId:   doctor.DoctorId,
			DoctorName: doctor.DoctorName,
		},
		PatientName:    basic.Name,
		Ward:           ward.Ward,
		Department:     medical.Department,
		History:        snapshotHistory(medical.History),
		IllnessPrimary: medical.IllnessPrimary,
	}

	acked, err := s.store.InsertAdmission(ctx, admission)
	if err != nil {
		log.Error().Err(err).Str("admissionId", admission.AdmissionId).Msg("Error from insertAdmission")
		return nil, err
	}
	if !acked {
		return models.AdmissionFailure(models.CodeInsertNotAcknowledged, INSERT_FAILURE_REASON), nil
	}

	if err := s.cache.Set(ctx, admission.AdmissionId, admission); err != nil {
		log.Warn().Err(err).Str("admissionId", admission.AdmissionId).Msg("Failed caching new admission")
	}
	log.Info().
		Str("admissionId", admission.AdmissionId).
		Str("patientId", patientId).
		Str("ward", ward.Ward).
		Str("doctorId", doctor.DoctorId).
		Msg("Patient admitted")
	return models.AdmissionSuccess(admission.AdmissionId), nil
}

// snapshotHistory deep-copies the container shapes history decodes into, so
// the admission never shares a slice or map with the source record.
func snapshotHistory(v interface{}) interface{} {
	switch h := v.(type) {
	case []string:
		return append([]string(nil), h...)
	case []interface{}:
		out := make([]interface{}, len(h))
		for i := range h {
			out[i] = snapshotHistory(h[i])
		}
		return out
	case primitive.A:
		out := make(primitive.A, len(h))
		for i := range h {
			out[i] = snapshotHistory(h[i])
		}
		return out
	case primitive.D:
		out := make(primitive.D, len(h))
		for i, e := range h {
			out[i] = primitive.E{Key: e.Key, Value: snapshotHistory(e.Value)}
		}
		return out
	case primitive.M:
		out := make(primitive.M, len(h))
		for k, val := range h {
			out[k] = snapshotHistory(val)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(h))
		for k, val := range h {
			out[k] = snapshotHistory(val)
		}
		return out
	default:
		return v
	}
}

/*
* Check cache for the admission
* If not cached fetch from database and set in cache
 */
func (s *AdmissionService) FetchAdmission(ctx context.Context, admissionId string) (*models.Admission, error) {
	var cached models.Admission
	exists, err := s.cache.Get(ctx, admissionId, &cached)
	if err != nil {
		log.Warn().Err(err).Str("admissionId", admissionId).Msg("Error from getCache")
	}
	if err == nil && exists {
		return &cached, nil
	}

	admission, err := s.store.FindAdmission(ctx, admissionId)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAdmissionNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("admissionId", admissionId).Msg("Error from findAdmission")
		return nil, err
	}
	if err := s.cache.Set(ctx, admissionId, admission); err != nil {
		log.Warn().Err(err).Str("admissionId", admissionId).Msg("Error from setCache")
	}
	return admission, nil
}
