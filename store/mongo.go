package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"HealthHubIPD/models"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DefaultTimeout = 5 * time.Second

// withoutID keeps the storage identifier out of every decoded document.
var withoutID = bson.M{"_id": 0}

type Collections struct {
	Patients   *mongo.Collection
	Wards      *mongo.Collection
	Doctors    *mongo.Collection
	Admissions *mongo.Collection
	Roster     *mongo.Collection
}

type MongoStore struct {
	coll    Collections
	timeout time.Duration
}

var _ Store = (*MongoStore)(nil)

func NewMongoStore(coll Collections, timeout time.Duration) *MongoStore {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &MongoStore{coll: coll, timeout: timeout}
}

func (s *MongoStore) FindPatient(ctx context.Context, patientId string) (*models.PatientRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"medical_info.patientId": patientId}
	opts := options.FindOne().SetProjection(withoutID)

	var patient models.PatientRecord
	err := s.coll.Patients.FindOne(ctx, filter, opts).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("patientId", patientId).Msg("Error from findOne while fetching patient")
		return nil, unavailable("find patient", err)
	}
	return &patient, nil
}

func (s *MongoStore) ListWards(ctx context.Context) ([]models.Ward, error) {
	var wards []models.Ward
	if err := s.findAll(ctx, s.coll.Wards, &wards); err != nil {
		log.Error().Err(err).Msg("Error from find while listing wards")
		return nil, unavailable("list wards", err)
	}
	return wards, nil
}

func (s *MongoStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := s.findAll(ctx, s.coll.Doctors, &doctors); err != nil {
		log.Error().Err(err).Msg("Error from find while listing doctors")
		return nil, unavailable("list doctors", err)
	}
	return doctors, nil
}

func (s *MongoStore) InsertAdmission(ctx context.Context, admission *models.Admission) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	inserted, err := s.coll.Admissions.InsertOne(ctx, admission)
	if errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		log.Warn().Str("admissionId", admission.AdmissionId).Msg("Admission insert was not acknowledged")
		return false, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		log.Error().Err(err).Str("admissionId", admission.AdmissionId).Msg("Admission id already stored")
		return false, fmt.Errorf("%w: %s", ErrDuplicateAdmission, admission.AdmissionId)
	}
	if err != nil {
		log.Error().Err(err).Str("admissionId", admission.AdmissionId).Msg("Error from insertOne while creating admission")
		return false, unavailable("insert admission", err)
	}
	log.Debug().Interface("insertedId", inserted.InsertedID).Msg("Inserted admission")
	return true, nil
}

func (s *MongoStore) FindAdmission(ctx context.Context, admissionId string) (*models.Admission, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"admission_id": admissionId}
	opts := options.FindOne().SetProjection(withoutID)

	var admission models.Admission
	err := s.coll.Admissions.FindOne(ctx, filter, opts).Decode(&admission)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("admissionId", admissionId).Msg("Error from findOne while fetching admission")
		return nil, unavailable("find admission", err)
	}
	return &admission, nil
}

func (s *MongoStore) InsertRoster(ctx context.Context, roster *models.WardRoster) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.coll.Roster.InsertOne(ctx, roster); err != nil {
		log.Error().Err(err).Str("ward", roster.Ward).Msg("Error from insertOne while saving roster")
		return unavailable("insert roster", err)
	}
	return nil
}

func (s *MongoStore) findAll(ctx context.Context, coll *mongo.Collection, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetProjection(withoutID))
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataStoreUnavailable, op, err)
}
