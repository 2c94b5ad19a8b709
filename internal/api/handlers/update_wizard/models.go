package update_wizard

// SelectConsultantRequest HTTP request model
type SelectConsultantRequest struct {
	ConsultantID string `json:"consultantId"`
}

// SelectSessionTypeRequest HTTP request model
type SelectSessionTypeRequest struct {
	SessionTypeID string `json:"sessionTypeId"`
}

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // YYYY-MM-DD
}

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	StartTime string `json:"startTime"` // HH:MM
}
