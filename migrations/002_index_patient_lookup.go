package migrations

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsurePatientLookupIndex(ctx context.Context, database *mongo.Database, patients string) error {
	name, err := database.Collection(patients).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "medical_info.patientId", Value: 1}},
		Options: options.Index().SetName("medical_info_patientId"),
	})
	if err != nil {
		log.Error().Err(err).Str("collection", patients).Msg("Unable to create patient lookup index")
		return err
	}
	log.Info().Str("index", name).Str("collection", patients).Msg("Migration applied")
	return nil
}
