package models

import "time"

// Admission is written once per successful admission and never updated.
// Doctor, ward and patient name are copies taken at admission time.
type Admission struct {
	AdmissionId    string         `json:"admission_id" bson:"admission_id"`
	AdmittedOn     time.Time      `json:"admitted_on" bson:"admitted_on"`
	PatientId      string         `json:"patient_id" bson:"patient_id"`
	AssignedDoctor AssignedDoctor `json:"assigned_doctor" bson:"assigned_doctor"`
	PatientName    string         `json:"patient_name" bson:"patient_name"`
	Ward           string         `json:"ward" bson:"ward"`
	Department     string         `json:"department" bson:"department"`
	History        interface{}    `json:"history" bson:"history"`
	IllnessPrimary string         `json:"illness_primary" bson:"illness_primary"`
}

type AssignedDoctor struct {
	DoctorId   string `json:"doctor_id" bson:"doctor_id"`
	DoctorName string `json:"doctor_name" bson:"doctor_name"`
}

const (
	StatusOK = "ok"

	CodePatientNotFound       = "PatientNotFound"
	CodeNoWardMatch           = "NoWardMatch"
	CodeNoDoctorAvailable     = "NoDoctorAvailable"
	CodeInsertNotAcknowledged = "InsertNotAcknowledged"
)

// AdmissionResult is what an admission call hands back to its caller. Failed
// business outcomes carry Error=true with a Code and Reason; success carries
// Status and Data.
type AdmissionResult struct {
	Error  bool           `json:"error"`
	Code   string         `json:"code,omitempty"`
	Reason string         `json:"reason,omitempty"`
	Status string         `json:"status,omitempty"`
	Data   *AdmissionData `json:"data,omitempty"`
}

type AdmissionData struct {
	AdmissionId string `json:"admission_id"`
}

func AdmissionFailure(code, reason string) *AdmissionResult {
	return &AdmissionResult{Error: true, Code: code, Reason: reason}
}

func AdmissionSuccess(admissionId string) *AdmissionResult {
	return &AdmissionResult{
		Status: StatusOK,
		Data:   &AdmissionData{AdmissionId: admissionId},
	}
}
