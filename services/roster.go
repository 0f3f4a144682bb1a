package services

import (
	"context"
	"time"

	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/rs/zerolog/log"
)

type RosterStore interface {
	store.WardRegistry
	store.DoctorPool
	store.RosterWriter
}

// RosterService reports, per ward, which doctors are free on a given day
// using the same availability rule as doctor assignment.
type RosterService struct {
	store RosterStore
	now   func() time.Time
}

func NewRosterService(st RosterStore, now func() time.Time) *RosterService {
	if now == nil {
		now = time.Now
	}
	return &RosterService{store: st, now: now}
}

func (r *RosterService) Today(ctx context.Context) ([]models.WardRoster, error) {
	wards, err := r.store.ListWards(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := r.store.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	now := r.now()
	return BuildRosters(wards, doctors, DateKey(now), now.UTC()), nil
}

func BuildRosters(wards []models.Ward, doctors []models.Doctor, dateKey string, generatedOn time.Time) []models.WardRoster {
	rosters := make([]models.WardRoster, 0, len(wards))
	for _, w := range wards {
		roster := models.WardRoster{
			Ward:        w.Ward,
			Date:        dateKey,
			Doctors:     []models.AssignedDoctor{},
			GeneratedOn: generatedOn,
		}
		for _, d := range doctors {
			if d.Department == w.Ward && IsAvailable(d, dateKey) {
				roster.Doctors = append(roster.Doctors, models.AssignedDoctor{
					DoctorId:   d.DoctorId,
					DoctorName: d.DoctorName,
				})
			}
		}
		rosters = append(rosters, roster)
	}
	return rosters
}

/*
* Build today's rosters
* Save one roster document per ward
* Wards without any available doctor are logged
 */
func (r *RosterService) Publish(ctx context.Context) (int, error) {
	rosters, err := r.Today(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from building today's roster")
		return 0, err
	}
	saved := 0
	for i := range rosters {
		if len(rosters[i].Doctors) == 0 {
			log.Warn().Str("ward", rosters[i].Ward).Str("date", rosters[i].Date).Msg("Ward has no available doctor today")
		}
		if err := r.store.InsertRoster(ctx, &rosters[i]); err != nil {
			log.Error().Err(err).Str("ward", rosters[i].Ward).Msg("Error from insertRoster")
			return saved, err
		}
		saved++
	}
	return saved, nil
}
