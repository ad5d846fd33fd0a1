package models

import "time"

// ReportRequest holds the four raw fields a report is built from. Values are
// used as received; nothing is trimmed or normalised.
type ReportRequest struct {
	FullName string `json:"fullName" query:"fullName" form:"fullName"`
	Email    string `json:"email"    query:"email"    form:"email"`
	Mobile   string `json:"mobile"   query:"mobile"   form:"mobile"`
	Dob      string `json:"dob"      query:"dob"      form:"dob"`
}

// Report is the assembled output handed to a rendering layer. Driver,
// Conductor and Fortune are nil when they could not be derived.
type Report struct {
	FullName       string           `json:"fullName"`
	Email          string           `json:"email"`
	Mobile         string           `json:"mobile"`
	Dob            string           `json:"dob"`
	LongDob        string           `json:"longDob"`
	Driver         *int             `json:"driver"`
	Conductor      *int             `json:"conductor"`
	Profile        AttributeProfile `json:"profile"`
	Fortune        *FortuneRecord   `json:"fortune"`
	RegistrationNo string           `json:"registrationNo"`
	ReportDate     string           `json:"reportDate"`
	GeneratedAt    time.Time        `json:"generatedAt"`
}

// NumbersPreview is the lightweight result served while a date of birth is
// still being entered.
type NumbersPreview struct {
	Dob       string           `json:"dob"`
	Valid     bool             `json:"valid"`
	LongDob   string           `json:"longDob"`
	Driver    *int             `json:"driver"`
	Conductor *int             `json:"conductor"`
	Profile   AttributeProfile `json:"profile"`
}
