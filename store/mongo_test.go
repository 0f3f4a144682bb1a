package store

import (
	"context"
	"testing"
	"time"

	"HealthHubIPD/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

func newTestStore(mt *mtest.T) *MongoStore {
	return NewMongoStore(Collections{
		Patients:   mt.Coll,
		Wards:      mt.Coll,
		Doctors:    mt.Coll,
		Admissions: mt.Coll,
		Roster:     mt.Coll,
	}, time.Second)
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoStore_FindPatient(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "basic_info", Value: bson.D{{Key: "name", Value: "Asha Rao"}}},
			{Key: "medical_info", Value: bson.D{
				{Key: "patientId", Value: "P1"},
				{Key: "department", Value: "Emergency"},
				{Key: "illness_primary", Value: "acute chest pain"},
				{Key: "history", Value: bson.A{"hypertension"}},
			}},
		}))

		patient, err := s.FindPatient(context.Background(), "P1")
		require.NoError(mt, err)
		require.NotNil(mt, patient.BasicInfo)
		require.NotNil(mt, patient.MedicalInfo)
		assert.Equal(mt, "Asha Rao", patient.BasicInfo.Name)
		assert.Equal(mt, "P1", patient.MedicalInfo.PatientId)
		assert.Equal(mt, "acute chest pain", patient.MedicalInfo.IllnessPrimary)
	})

	mt.Run("not found", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		patient, err := s.FindPatient(context.Background(), "P404")
		assert.Nil(mt, patient)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("query failure", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Name:    "InterruptedAtShutdown",
			Message: "interrupted at shutdown",
		}))

		_, err := s.FindPatient(context.Background(), "P1")
		assert.ErrorIs(mt, err, ErrDataStoreUnavailable)
		assert.NotErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoStore_ListWards(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("keeps read order", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns(mt), mtest.FirstBatch,
				bson.D{{Key: "ward", Value: "Cardiology"}, {Key: "patient_condition_keywords", Value: bson.A{"chest pain", "cardiac"}}},
			),
			mtest.CreateCursorResponse(0, ns(mt), mtest.NextBatch,
				bson.D{{Key: "ward", Value: "Pulmonology"}, {Key: "patient_condition_keywords", Value: bson.A{"asthma"}}},
			),
		)

		wards, err := s.ListWards(context.Background())
		require.NoError(mt, err)
		require.Len(mt, wards, 2)
		assert.Equal(mt, "Cardiology", wards[0].Ward)
		assert.Equal(mt, []string{"chest pain", "cardiac"}, wards[0].PatientConditionKeywords)
		assert.Equal(mt, "Pulmonology", wards[1].Ward)
	})

	mt.Run("find failure", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		_, err := s.ListWards(context.Background())
		assert.ErrorIs(mt, err, ErrDataStoreUnavailable)
	})
}

func TestMongoStore_ListDoctors(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes calendar", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{
				{Key: "doctor_id", Value: "D1"},
				{Key: "doctor_name", Value: "Dr. Mehta"},
				{Key: "department", Value: "Cardiology"},
				{Key: "unavailable_dates", Value: bson.A{"2026-1-5", "2026-12-25"}},
			},
		))

		doctors, err := s.ListDoctors(context.Background())
		require.NoError(mt, err)
		require.Len(mt, doctors, 1)
		assert.Equal(mt, models.Doctor{
			DoctorId:         "D1",
			DoctorName:       "Dr. Mehta",
			Department:       "Cardiology",
			UnavailableDates: []string{"2026-1-5", "2026-12-25"},
		}, doctors[0])
	})
}

func TestMongoStore_InsertAdmission(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	admission := &models.Admission{
		AdmissionId: "a5d4c1f8-6a1e-4c55-9d0c-0e7d0e3f9b11",
		AdmittedOn:  time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
		PatientId:   "P1",
		AssignedDoctor: models.AssignedDoctor{
			DoctorId:   "D1",
			DoctorName: "Dr. Mehta",
		},
	}

	mt.Run("acknowledged", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		acked, err := s.InsertAdmission(context.Background(), admission)
		require.NoError(mt, err)
		assert.True(mt, acked)
	})

	mt.Run("unacknowledged", func(mt *mtest.T) {
		unacked, err := mt.Coll.Clone(options.Collection().SetWriteConcern(writeconcern.Unacknowledged()))
		require.NoError(mt, err)
		s := NewMongoStore(Collections{Admissions: unacked}, time.Second)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		acked, err := s.InsertAdmission(context.Background(), admission)
		assert.NoError(mt, err)
		assert.False(mt, acked)
	})

	mt.Run("duplicate admission id", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: ipd.IPD_ADMISSIONS index: uniq_admission_id",
		}))

		acked, err := s.InsertAdmission(context.Background(), admission)
		assert.False(mt, acked)
		assert.ErrorIs(mt, err, ErrDuplicateAdmission)
		assert.NotErrorIs(mt, err, ErrDataStoreUnavailable)
	})

	mt.Run("write error", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		acked, err := s.InsertAdmission(context.Background(), admission)
		assert.False(mt, acked)
		assert.ErrorIs(mt, err, ErrDataStoreUnavailable)
	})
}

func TestMongoStore_FindAdmission(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{
			{Key: "admission_id", Value: "A1"},
			{Key: "patient_id", Value: "P1"},
			{Key: "assigned_doctor", Value: bson.D{{Key: "doctor_id", Value: "D1"}, {Key: "doctor_name", Value: "Dr. Mehta"}}},
		}))

		admission, err := s.FindAdmission(context.Background(), "A1")
		require.NoError(mt, err)
		assert.Equal(mt, "P1", admission.PatientId)
		assert.Equal(mt, "D1", admission.AssignedDoctor.DoctorId)
	})

	mt.Run("not found", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := s.FindAdmission(context.Background(), "missing")
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}

func TestMongoStore_InsertRoster(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		s := newTestStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := s.InsertRoster(context.Background(), &models.WardRoster{Ward: "Cardiology", Date: "2026-10-16"})
		assert.NoError(mt, err)
	})
}

func TestUnavailable_KeepsCause(t *testing.T) {
	err := unavailable("list wards", context.DeadlineExceeded)
	assert.ErrorIs(t, err, ErrDataStoreUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "list wards")

	assert.ErrorIs(t, unavailable("find patient", context.Canceled), context.Canceled)
}

func TestNewMongoStore_DefaultTimeout(t *testing.T) {
	s := NewMongoStore(Collections{}, 0)
	assert.Equal(t, DefaultTimeout, s.timeout)
}
