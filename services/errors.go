package services

import "errors"

var (
	ErrInvalidPatientID       = errors.New("patient id must not be empty")
	ErrPatientNotFound        = errors.New("patient not found")
	ErrMalformedPatientRecord = errors.New("malformed patient record")
	ErrNoWardMatch            = errors.New("no ward matches the illness")
	ErrNoDoctorAvailable      = errors.New("no doctor available for the ward")
	ErrAdmissionNotFound      = errors.New("admission not found")
)
