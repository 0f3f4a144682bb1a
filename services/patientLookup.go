package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"HealthHubIPD/models"
	"HealthHubIPD/store"

	"github.com/rs/zerolog/log"
)

/*
* Query the patient directory on medical_info.patientId
* No match is reported as ErrPatientNotFound
* Any other store fault propagates unchanged
 */
func LookupPatient(ctx context.Context, dir store.PatientDirectory, patientId string) (*models.PatientRecord, error) {
	if strings.TrimSpace(patientId) == "" {
		return nil, ErrInvalidPatientID
	}
	patient, err := dir.FindPatient(ctx, patientId)
	if errors.Is(err, store.ErrNotFound) {
		log.Info().Str("patientId", patientId).Msg("No patient found in the patient directory")
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, err
	}
	return patient, nil
}

// validatePatient rejects records whose stored documents lack a field the
// admission copies. Present but empty values are accepted.
func validatePatient(patient *models.PatientRecord) error {
	if patient.BasicInfo == nil {
		return fmt.Errorf("%w: basic_info missing", ErrMalformedPatientRecord)
	}
	if patient.MedicalInfo == nil {
		return fmt.Errorf("%w: medical_info missing", ErrMalformedPatientRecord)
	}
	missing := []string{}
	for _, k := range patient.BasicInfo.Missing() {
		missing = append(missing, "basic_info."+k)
	}
	for _, k := range patient.MedicalInfo.Missing() {
		missing = append(missing, "medical_info."+k)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrMalformedPatientRecord, strings.Join(missing, ", "))
	}
	return nil
}
