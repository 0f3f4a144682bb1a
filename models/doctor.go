package models

type Doctor struct {
	DoctorId         string   `json:"doctor_id" bson:"doctor_id"`
	DoctorName       string   `json:"doctor_name" bson:"doctor_name"`
	Department       string   `json:"department" bson:"department"`
	UnavailableDates []string `json:"unavailable_dates" bson:"unavailable_dates"`
}
