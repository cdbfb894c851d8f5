package dtos

type JobCreationRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`

	// Optional Fields
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
}
