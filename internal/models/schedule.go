package models

import (
	"fmt"
	"strings"
)

// Term is an academic semester.
type Term string

const (
	TermSpring Term = "Spring"
	TermSummer Term = "Summer"
	TermFall   Term = "Fall"
	TermWinter Term = "Winter"
)

// Campus is one of the physical locations offering courses.
type Campus string

const (
	CampusNewark       Campus = "Newark"
	CampusNewBrunswick Campus = "New Brunswick"
	CampusCamden       Campus = "Camden"
)

// SubjectNames maps department codes to department names. It doubles as the
// default whitelist: only courses whose subject code appears here are served.
var SubjectNames = map[int]string{
	640: "Mathematics",
	198: "Computer Science",
	623: "Management Science and Information Systems",
	547: "Information Technology and Informatics",
	548: "Information Systems",
}

// UnknownDepartment is emitted when a whitelisted code has no name entry.
const UnknownDepartment = "Unknown Department"

// ScheduleQuery identifies one published schedule blob. Term and campus are
// restricted to the enumerated values; no other strings form valid keys.
type ScheduleQuery struct {
	Year   string `form:"year" validate:"required"`
	Term   string `form:"term" validate:"required,oneof=Spring Summer Fall Winter"`
	Campus string `form:"campus" validate:"required,oneof=Newark 'New Brunswick' Camden"`
}

// CacheKey returns the redis key for the normalized schedule.
func (q ScheduleQuery) CacheKey() string {
	return fmt.Sprintf("%s:%s:%s", q.Year, strings.ToLower(q.Term), strings.ToLower(q.Campus))
}

// StorageKey returns the object key addressing the raw schedule blob.
func (q ScheduleQuery) StorageKey() string {
	return fmt.Sprintf("%s/%s/%s.json", q.Year, strings.ToLower(q.Term), strings.ToLower(q.Campus))
}

// RawMeetingTime is one meeting slot as published upstream.
type RawMeetingTime struct {
	MeetingDay string `json:"meetingDay"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	CampusName string `json:"campusName"`
}

// RawSection is one course section as published upstream.
type RawSection struct {
	Number          string           `json:"number"`
	InstructorsText string           `json:"instructorsText"`
	OpenStatus      bool             `json:"openStatus"`
	MeetingTimes    []RawMeetingTime `json:"meetingTimes"`
}

// RawCredits carries the human-readable credit description.
type RawCredits struct {
	Description string `json:"description"`
}

// RawCourseRecord is a loosely-structured course record as stored upstream.
// Only the consumed fields are declared; the rest of the blob is ignored.
type RawCourseRecord struct {
	ExpandedTitle string       `json:"expandedTitle"`
	Subject       string       `json:"subject"`
	CourseString  string       `json:"courseString"`
	CreditsObject RawCredits   `json:"creditsObject"`
	Sections      []RawSection `json:"sections"`
}

// Section is the normalized shape of one course section.
type Section struct {
	Section    string   `json:"section"`
	Instructor string   `json:"instructor"`
	Status     string   `json:"status"`
	Meetings   []string `json:"meetings"`
}

// Course is the normalized shape of one course offering.
type Course struct {
	Title      string    `json:"title"`
	Department string    `json:"department"`
	CourseCode string    `json:"courseCode"`
	Credits    string    `json:"credits"`
	Sections   []Section `json:"sections"`
}

// Schedule is the externally returned payload.
type Schedule struct {
	Response []Course `json:"response"`
}
