package services

import (
	"context"
	"sync"
	"testing"

	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is an in-memory store.Store. Err fields force the matching call
// to fail.
type fakeStore struct {
	mu sync.Mutex

	patients   []models.PatientRecord
	wards      []models.Ward
	doctors    []models.Doctor
	admissions []models.Admission
	rosters    []models.WardRoster

	nack bool

	patientErr   error
	wardErr      error
	doctorErr    error
	insertErr    error
	admissionErr error
	rosterErr    error

	findAdmissionCalls int
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) FindPatient(_ context.Context, patientId string) (*models.PatientRecord, error) {
	if f.patientErr != nil {
		return nil, f.patientErr
	}
	for _, p := range f.patients {
		if p.MedicalInfo != nil && p.MedicalInfo.PatientId == patientId {
			found := p
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) ListWards(context.Context) ([]models.Ward, error) {
	if f.wardErr != nil {
		return nil, f.wardErr
	}
	return append([]models.Ward(nil), f.wards...), nil
}

func (f *fakeStore) ListDoctors(context.Context) ([]models.Doctor, error) {
	if f.doctorErr != nil {
		return nil, f.doctorErr
	}
	return append([]models.Doctor(nil), f.doctors...), nil
}

func (f *fakeStore) InsertAdmission(_ context.Context, admission *models.Admission) (bool, error) {
	if f.insertErr != nil {
		return false, f.insertErr
	}
	if f.nack {
		return false, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.admissions = append(f.admissions, *admission)
	return true, nil
}

func (f *fakeStore) FindAdmission(_ context.Context, admissionId string) (*models.Admission, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findAdmissionCalls++
	if f.admissionErr != nil {
		return nil, f.admissionErr
	}
	for _, a := range f.admissions {
		if a.AdmissionId == admissionId {
			found := a
			return &found, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeStore) InsertRoster(_ context.Context, roster *models.WardRoster) error {
	if f.rosterErr != nil {
		return f.rosterErr
	}
	f.rosters = append(f.rosters, *roster)
	return nil
}

func (f *fakeStore) written() []models.Admission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Admission(nil), f.admissions...)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	args := m.Called(ctx, key, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func cardiologyPatient() models.PatientRecord {
	return models.PatientRecord{
		BasicInfo: &models.BasicInfo{Name: "Asha Rao", Age: 54, Gender: "F"},
		MedicalInfo: &models.MedicalInfo{
			PatientId:      "P1",
			Department:     "Emergency",
			IllnessPrimary: "acute chest pain",
			History:        []string{"hypertension", "smoker"},
		},
	}
}

func cardiologyStore() *fakeStore {
	return &fakeStore{
		patients: []models.PatientRecord{cardiologyPatient()},
		wards: []models.Ward{
			{Ward: "Cardiology", PatientConditionKeywords: []string{"chest pain", "cardiac"}},
		},
		doctors: []models.Doctor{
			{DoctorId: "D1", DoctorName: "Dr. Mehta", Department: "Cardiology", UnavailableDates: []string{}},
		},
	}
}

// decodedPatient runs doc through the BSON decoder the way the Mongo store
// does, so absent fields are recorded.
func decodedPatient(t *testing.T, doc bson.M) models.PatientRecord {
	t.Helper()
	raw, err := bson.Marshal(doc)
	require.NoError(t, err)
	var patient models.PatientRecord
	require.NoError(t, bson.Unmarshal(raw, &patient))
	return patient
}

func cardiologyDocument() bson.M {
	return bson.M{
		"basic_info": bson.M{"name": "Asha Rao"},
		"medical_info": bson.M{
			"patientId":       "P1",
			"department":      "Emergency",
			"illness_primary": "acute chest pain",
			"history":         bson.A{"hypertension"},
		},
	}
}
