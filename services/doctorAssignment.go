package services

import (
	"context"
	"fmt"
	"time"

	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/rs/zerolog/log"
)

// DateKey renders t the way unavailable_dates are keyed: year-month-day with
// no zero padding, e.g. 2026-3-7.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

/*
* Fetch the full doctor pool
* Keep doctors of the ward who are not unavailable on now's date key
* First one in pool order is assigned, none is ErrNoDoctorAvailable
 */
func AssignDoctor(ctx context.Context, pool store.DoctorPool, ward string, now time.Time) (*models.Doctor, error) {
	doctors, err := pool.ListDoctors(ctx)
	if err != nil {
		return nil, err
	}
	dateKey := DateKey(now)
	doctor, ok := PickDoctor(doctors, ward, dateKey)
	if !ok {
		log.Info().Str("ward", ward).Str("date", dateKey).Msg("No doctor available for the ward")
		return nil, ErrNoDoctorAvailable
	}
	return doctor, nil
}

func PickDoctor(doctors []models.Doctor, ward, dateKey string) (*models.Doctor, bool) {
	for i := range doctors {
		if doctors[i].Department == ward && IsAvailable(doctors[i], dateKey) {
			doctor := doctors[i]
			return &doctor, true
		}
	}
	return nil, false
}

func IsAvailable(doctor models.Doctor, dateKey string) bool {
	for _, d := range doctor.UnavailableDates {
		if d == dateKey {
			return false
		}
	}
	return true
}
