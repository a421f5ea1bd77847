package emergency

// Case is one emergency waiting for treatment. A lower Severity is more
// urgent.
type Case struct {
	Severity  int `json:"severity"`
	PatientID int `json:"patient_id"`
}
