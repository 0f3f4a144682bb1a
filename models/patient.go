package models

import "go.mongodb.org/mongo-driver/bson"

// PatientRecord is the patient management document as stored in the patient
// directory. It is owned by the patient management system and read-only here.
type PatientRecord struct {
	BasicInfo   *BasicInfo   `json:"basic_info" bson:"basic_info"`
	MedicalInfo *MedicalInfo `json:"medical_info" bson:"medical_info"`
}

type BasicInfo struct {
	Name   string `json:"name" bson:"name"`
	Age    int    `json:"age,omitempty" bson:"age,omitempty"`
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`
	Phone  string `json:"phone,omitempty" bson:"phone,omitempty"`

	missing []string
}

type MedicalInfo struct {
	PatientId      string      `json:"patientId" bson:"patientId"`
	Department     string      `json:"department" bson:"department"`
	IllnessPrimary string      `json:"illness_primary" bson:"illness_primary"`
	History        interface{} `json:"history" bson:"history"`

	missing []string
}

// UnmarshalBSON records which admission fields were absent from the stored
// document, so an absent name can be told apart from an empty one.
func (b *BasicInfo) UnmarshalBSON(data []byte) error {
	type basicInfo BasicInfo
	var decoded basicInfo
	if err := bson.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*b = BasicInfo(decoded)
	b.missing = absentKeys(bson.Raw(data), "name")
	return nil
}

// Missing lists the admission fields absent from the decoded document.
// Records built in code report none.
func (b *BasicInfo) Missing() []string {
	return b.missing
}

func (m *MedicalInfo) UnmarshalBSON(data []byte) error {
	type medicalInfo MedicalInfo
	var decoded medicalInfo
	if err := bson.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*m = MedicalInfo(decoded)
	m.missing = absentKeys(bson.Raw(data), "department", "illness_primary", "history")
	return nil
}

func (m *MedicalInfo) Missing() []string {
	return m.missing
}

func absentKeys(doc bson.Raw, keys ...string) []string {
	var absent []string
	for _, k := range keys {
		if _, err := doc.LookupErr(k); err != nil {
			absent = append(absent, k)
		}
	}
	return absent
}
