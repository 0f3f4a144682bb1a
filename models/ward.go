package models

type Ward struct {
	Ward                     string   `json:"ward" bson:"ward"`
	PatientConditionKeywords []string `json:"patient_condition_keywords" bson:"patient_condition_keywords"`
}
