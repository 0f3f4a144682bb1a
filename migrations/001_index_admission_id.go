package migrations

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAdmissionIndexes makes admission_id unique and indexes patient_id
// for admission history reads. It is safe to run on every start.
func EnsureAdmissionIndexes(ctx context.Context, database *mongo.Database, admissions string) error {
	names, err := database.Collection(admissions).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "admission_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admission_id"),
		},
		{
			Keys:    bson.D{{Key: "patient_id", Value: 1}, {Key: "admitted_on", Value: -1}},
			Options: options.Index().SetName("patient_admitted_on"),
		},
	})
	if err != nil {
		log.Error().Err(err).Str("collection", admissions).Msg("Unable to create admission indexes")
		return err
	}
	log.Info().Strs("indexes", names).Str("collection", admissions).Msg("Migration applied")
	return nil
}
