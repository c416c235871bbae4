package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleQueryKeys(t *testing.T) {
	query := ScheduleQuery{Year: "2024", Term: "Fall", Campus: "Newark"}
	assert.Equal(t, "2024:fall:newark", query.CacheKey())
	assert.Equal(t, "2024/fall/newark.json", query.StorageKey())
}

func TestScheduleQueryKeysLowerCaseMultiWordCampus(t *testing.T) {
	query := ScheduleQuery{Year: "2025", Term: "Spring", Campus: "New Brunswick"}
	assert.Equal(t, "2025:spring:new brunswick", query.CacheKey())
	assert.Equal(t, "2025/spring/new brunswick.json", query.StorageKey())
}

func TestSubjectNamesCoversDefaultWhitelist(t *testing.T) {
	assert.Equal(t, "Computer Science", SubjectNames[198])
	assert.Equal(t, "Mathematics", SubjectNames[640])
	assert.Equal(t, "Management Science and Information Systems", SubjectNames[623])
	assert.Equal(t, "Information Technology and Informatics", SubjectNames[547])
	assert.Equal(t, "Information Systems", SubjectNames[548])
	assert.Len(t, SubjectNames, 5)
}
