package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/schedule-assistant/soc-api/internal/models"
)

var dayNames = map[string]string{
	"M": "Monday",
	"T": "Tuesday",
	"W": "Wednesday",
	"H": "Thursday",
	"F": "Friday",
	"S": "Saturday",
}

const unknownDay = "Unknown Day"

// Normalize transforms raw course records into the canonical schedule shape.
// A record is included iff its subject code parses to a member of the
// whitelist and its trimmed title is non-empty. Input order is preserved and
// the input is never mutated.
func Normalize(records []models.RawCourseRecord, subjects map[int]string) []models.Course {
	courses := make([]models.Course, 0, len(records))
	for _, record := range records {
		title := strings.TrimSpace(record.ExpandedTitle)
		if title == "" {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(record.Subject))
		if err != nil {
			continue
		}
		department, ok := subjects[code]
		if !ok {
			continue
		}
		if department == "" {
			department = models.UnknownDepartment
		}

		courses = append(courses, models.Course{
			Title:      title,
			Department: department,
			CourseCode: record.CourseString,
			Credits:    record.CreditsObject.Description,
			Sections:   normalizeSections(record.Sections),
		})
	}

	return courses
}

func normalizeSections(sections []models.RawSection) []models.Section {
	result := make([]models.Section, 0, len(sections))
	for _, section := range sections {
		status := "Closed"
		if section.OpenStatus {
			status = "Open"
		}

		meetings := make([]string, 0, len(section.MeetingTimes))
		for _, mt := range section.MeetingTimes {
			meetings = append(meetings, formatMeeting(mt))
		}

		result = append(result, models.Section{
			Section:    section.Number,
			Instructor: section.InstructorsText,
			Status:     status,
			Meetings:   meetings,
		})
	}

	return result
}

func formatMeeting(mt models.RawMeetingTime) string {
	day, ok := dayNames[mt.MeetingDay]
	if !ok {
		day = unknownDay
	}
	return fmt.Sprintf("%s: %s - %s, %s", day, mt.StartTime, mt.EndTime, mt.CampusName)
}
