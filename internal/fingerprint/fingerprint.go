// Package fingerprint normalizes semi-structured roster rows and derives the
// content hash used as the deduplication key for bulk course import.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// Columns is the required column set for a course roster row, in the order
// the fields enter the fingerprint.
var Columns = []string{
	"year",
	"stream",
	"courseType",
	"courseCode",
	"courseTitle",
	"lectureHours",
	"tutorialHours",
	"practicalHours",
	"credits",
	"prerequisites",
	"school",
	"forenoonSlots",
	"afternoonSlots",
	"totalSlots",
	"basket",
}

// delimiter joins fingerprint fields. Pipe does not occur in roster data.
const delimiter = "|"

// Record is the normalized form of a course roster row. Blank or absent text
// fields become nil, and numeric-looking fields are parsed to integers
// (absent or non-numeric also become nil). An externally supplied row id is
// deliberately not part of the record: two rows differing only in id are the
// same course.
type Record struct {
	Year           *int
	Stream         *string
	CourseType     *string
	CourseCode     *string
	CourseTitle    *string
	LectureHours   *int
	TutorialHours  *int
	PracticalHours *int
	Credits        *int
	Prerequisites  *string
	School         *string
	ForenoonSlots  *int
	AfternoonSlots *int
	TotalSlots     *int
	Basket         *string
}

// Normalize canonicalizes a raw row keyed by column name.
func Normalize(raw map[string]string) Record {
	return Record{
		Year:           Int(raw, "year"),
		Stream:         Text(raw, "stream"),
		CourseType:     Text(raw, "courseType"),
		CourseCode:     Text(raw, "courseCode"),
		CourseTitle:    Text(raw, "courseTitle"),
		LectureHours:   Int(raw, "lectureHours"),
		TutorialHours:  Int(raw, "tutorialHours"),
		PracticalHours: Int(raw, "practicalHours"),
		Credits:        Int(raw, "credits"),
		Prerequisites:  Text(raw, "prerequisites"),
		School:         Text(raw, "school"),
		ForenoonSlots:  Int(raw, "forenoonSlots"),
		AfternoonSlots: Int(raw, "afternoonSlots"),
		TotalSlots:     Int(raw, "totalSlots"),
		Basket:         Text(raw, "basket"),
	}
}

// Text returns the trimmed value for key, or nil when the field is blank or
// absent.
func Text(raw map[string]string, key string) *string {
	v := strings.TrimSpace(raw[key])
	if v == "" {
		return nil
	}
	return &v
}

// Int returns the value for key parsed as an integer, or nil when the field
// is blank, absent, or not numeric.
func Int(raw map[string]string, key string) *int {
	v := strings.TrimSpace(raw[key])
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// Fingerprint derives the deterministic content hash of the record: every
// semantic field coerced to its lowercase trimmed string form (empty for
// nil), joined and hashed with SHA-256, rendered as 64 hex characters.
// Rows with identical semantic content hash identically regardless of the
// original casing, surrounding whitespace, or absence-vs-empty-string.
func (r Record) Fingerprint() string {
	parts := []string{
		intPart(r.Year),
		textPart(r.Stream),
		textPart(r.CourseType),
		textPart(r.CourseCode),
		textPart(r.CourseTitle),
		intPart(r.LectureHours),
		intPart(r.TutorialHours),
		intPart(r.PracticalHours),
		intPart(r.Credits),
		textPart(r.Prerequisites),
		textPart(r.School),
		intPart(r.ForenoonSlots),
		intPart(r.AfternoonSlots),
		intPart(r.TotalSlots),
		textPart(r.Basket),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, delimiter)))
	return hex.EncodeToString(sum[:])
}

// MissingColumns reports which required columns are absent from the header
// set of a roster row. Column order follows Columns.
func MissingColumns(row map[string]string) []string {
	var missing []string
	for _, col := range Columns {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

func textPart(v *string) string {
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*v))
}

func intPart(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
