package models

import "time"

// WardRoster lists the doctors of one ward that are available on Date.
type WardRoster struct {
	Ward        string           `json:"ward" bson:"ward"`
	Date        string           `json:"date" bson:"date"`
	Doctors     []AssignedDoctor `json:"doctors" bson:"doctors"`
	GeneratedOn time.Time        `json:"generated_on" bson:"generated_on"`
}
