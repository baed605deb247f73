package model

// Allocation records that a faculty member consumed a course's forenoon
// and/or afternoon slot. It snapshots the course's descriptive fields at
// allocation time instead of referencing the course row, so the history
// survives later mutation or deletion of the source. At least one of the two
// slot booleans is true; the row is immutable except for deletion.
type Allocation struct {
	ID             int     `json:"id"`
	Year           *int    `json:"year"`
	Stream         *string `json:"stream"`
	CourseType     *string `json:"courseType"`
	CourseCode     *string `json:"courseCode"`
	CourseTitle    *string `json:"courseTitle"`
	LectureHours   *int    `json:"lectureHours"`
	TutorialHours  *int    `json:"tutorialHours"`
	PracticalHours *int    `json:"practicalHours"`
	Credits        *int    `json:"credits"`
	Prerequisites  *string `json:"prerequisites"`
	School         *string `json:"school"`
	Basket         *string `json:"basket"`
	ForenoonSlots  bool    `json:"forenoonSlots"`
	AfternoonSlots bool    `json:"afternoonSlots"`
	Faculty        string  `json:"faculty"`
	EmpID          string  `json:"empid"`
}

// CourseSnapshot is the denormalized course payload the caller sends with an
// allocation request. Counter fields from the course row are not part of the
// snapshot.
type CourseSnapshot struct {
	Year           *int    `json:"year"`
	Stream         *string `json:"stream"`
	CourseType     *string `json:"courseType"`
	CourseCode     *string `json:"courseCode"`
	CourseTitle    *string `json:"courseTitle"`
	LectureHours   *int    `json:"lectureHours"`
	TutorialHours  *int    `json:"tutorialHours"`
	PracticalHours *int    `json:"practicalHours"`
	Credits        *int    `json:"credits"`
	Prerequisites  *string `json:"prerequisites"`
	School         *string `json:"school"`
	Basket         *string `json:"basket"`
}

// AllocateSlotRequest is the payload for allocating slots to a faculty
// member. Field names follow the wire format the admin UI has always sent.
type AllocateSlotRequest struct {
	CourseID  int            `json:"courseId" binding:"required"`
	Forenoon  bool           `json:"F_N"`
	Afternoon bool           `json:"A_N"`
	Course    CourseSnapshot `json:"Course"`
	Faculty   string         `json:"Faculty" binding:"required"`
	EmpID     string         `json:"Facultyempid" binding:"required,number"`
}

// DeallocateRequest reverses a prior allocation, matched by employee id and
// course code. The booleans name which counters the allocation had consumed.
type DeallocateRequest struct {
	EmpID      string `json:"empid" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	Forenoon   bool   `json:"forenoonSlots"`
	Afternoon  bool   `json:"afternoonSlots"`
}

// CourseAllocationView is one row of the per-course allocation listing.
type CourseAllocationView struct {
	Faculty        string `json:"faculty"`
	ForenoonSlots  bool   `json:"forenoonSlots"`
	AfternoonSlots bool   `json:"afternoonSlots"`
}
