package model

// Course is a teachable unit offered in a given year/stream. Descriptive
// fields are nullable because roster imports carry blanks; the two slot
// counters are always present and never negative. After creation only the
// counters change (allocation and reversal); everything else is immutable
// until the row is deleted.
type Course struct {
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
	ForenoonSlots  int     `json:"forenoonSlots"`
	AfternoonSlots int     `json:"afternoonSlots"`
	TotalSlots     *int    `json:"totalSlots"`
	Basket         *string `json:"basket"`
	// Fingerprint is the content hash that deduplicates bulk imports.
	Fingerprint string `json:"-"`
}

// ImportRequest carries a batch of raw roster rows parsed client-side.
type ImportRequest struct {
	Data []map[string]string `json:"data" binding:"required,min=1"`
}

// DeleteCoursesRequest selects courses for bulk deletion by serial id.
type DeleteCoursesRequest struct {
	IDs []int `json:"ids" binding:"required,min=1"`
}
