package model

// Faculty is a staff member eligible for slot allocation. The employee id is
// externally assigned and unique; it is the conflict key for both import
// paths.
type Faculty struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	EmpID    string  `json:"empid"`
	PhotoURL *string `json:"photo_url"`
	Email    *string `json:"email"`
	School   *string `json:"school"`
}

// DeleteFacultiesRequest selects faculty rows for bulk deletion. The field
// carries serial row ids despite its historical name.
type DeleteFacultiesRequest struct {
	EmpIDs []int `json:"empids" binding:"required,min=1"`
}
