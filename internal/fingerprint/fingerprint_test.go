package fingerprint

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleRow() map[string]string {
	return map[string]string{
		"year":           "2",
		"stream":         "CSE",
		"courseType":     "Core",
		"courseCode":     "CS201",
		"courseTitle":    "Data Structures",
		"lectureHours":   "3",
		"tutorialHours":  "1",
		"practicalHours": "2",
		"credits":        "4",
		"prerequisites":  "CS101",
		"school":         "SCOPE",
		"forenoonSlots":  "5",
		"afternoonSlots": "5",
		"totalSlots":     "10",
		"basket":         "B1",
	}
}

func TestFingerprintIsHexSHA256(t *testing.T) {
	fp := Normalize(sampleRow()).Fingerprint()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), fp)
}

func TestFingerprintIgnoresCaseAndWhitespace(t *testing.T) {
	base := Normalize(sampleRow()).Fingerprint()

	noisy := sampleRow()
	noisy["courseTitle"] = "  DATA STRUCTURES "
	noisy["stream"] = "cse"
	noisy["school"] = " scope"

	assert.Equal(t, base, Normalize(noisy).Fingerprint())
}

func TestFingerprintTreatsAbsentAsEmpty(t *testing.T) {
	withEmpty := sampleRow()
	withEmpty["prerequisites"] = ""
	withEmpty["basket"] = "   "

	withAbsent := sampleRow()
	delete(withAbsent, "prerequisites")
	delete(withAbsent, "basket")

	assert.Equal(t,
		Normalize(withEmpty).Fingerprint(),
		Normalize(withAbsent).Fingerprint())
}

func TestFingerprintDetectsSemanticDifference(t *testing.T) {
	base := Normalize(sampleRow()).Fingerprint()

	changed := sampleRow()
	changed["credits"] = "3"

	assert.NotEqual(t, base, Normalize(changed).Fingerprint())
}

func TestFingerprintExcludesRowID(t *testing.T) {
	plain := sampleRow()

	withID := sampleRow()
	withID["id"] = "42"

	assert.Equal(t,
		Normalize(plain).Fingerprint(),
		Normalize(withID).Fingerprint())
}

func TestNormalizeParsesNumericFields(t *testing.T) {
	rec := Normalize(sampleRow())

	assert.NotNil(t, rec.Year)
	assert.Equal(t, 2, *rec.Year)
	assert.NotNil(t, rec.ForenoonSlots)
	assert.Equal(t, 5, *rec.ForenoonSlots)
}

func TestNormalizeNonNumericBecomesNil(t *testing.T) {
	row := sampleRow()
	row["credits"] = "four"
	row["year"] = ""

	rec := Normalize(row)
	assert.Nil(t, rec.Credits)
	assert.Nil(t, rec.Year)
}

func TestMissingColumns(t *testing.T) {
	row := sampleRow()
	delete(row, "basket")
	delete(row, "year")

	missing := MissingColumns(row)
	assert.Equal(t, []string{"year", "basket"}, missing)

	assert.Empty(t, MissingColumns(sampleRow()))
}
