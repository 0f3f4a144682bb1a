package services

import (
	"context"
	"strings"

	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/rs/zerolog/log"
)

/*
* Fetch the full ward registry, no filter at the store
* Return the first ward (registry order) having a keyword contained in the illness
* Nothing matched is ErrNoWardMatch
 */
func AssignWard(ctx context.Context, registry store.WardRegistry, illness string) (*models.Ward, error) {
	wards, err := registry.ListWards(ctx)
	if err != nil {
		return nil, err
	}
	ward, ok := MatchWard(wards, illness)
	if !ok {
		log.Info().Str("illness", illness).Int("wards", len(wards)).Msg("No ward matched the illness")
		return nil, ErrNoWardMatch
	}
	return ward, nil
}

// MatchWard is a case-sensitive substring match with no tokenizing. When
// several wards match, the earliest in wards wins.
func MatchWard(wards []models.Ward, illness string) (*models.Ward, bool) {
	for i := range wards {
		for _, keyword := range wards[i].PatientConditionKeywords {
			// an empty keyword would match every illness
			if keyword == "" {
				continue
			}
			if strings.Contains(illness, keyword) {
				ward := wards[i]
				return &ward, true
			}
		}
	}
	return nil, false
}
