package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EntityType categorizes a span extracted from user text.
type EntityType string

const (
	EntityCourseName EntityType = "COURSE_NAME"
	EntityCourseCode EntityType = "COURSE_CODE"
	EntityInstructor EntityType = "INSTRUCTOR"
	EntityBuilding   EntityType = "BUILDING"
	EntityTime       EntityType = "TIME"
	EntityWeekday    EntityType = "WEEKDAY"
	EntitySection    EntityType = "SECTION"
)

// EntityTypes lists the valid entity categories.
var EntityTypes = []EntityType{
	EntityCourseName,
	EntityCourseCode,
	EntityInstructor,
	EntityBuilding,
	EntityTime,
	EntityWeekday,
	EntitySection,
}

// Entity is a typed span extracted from an utterance.
type Entity struct {
	Type  EntityType
	Value string
}

// Intent is the classified purpose of a user utterance.
type Intent string

const (
	IntentCourseInfo       Intent = "course_info"
	IntentInstructorLookup Intent = "instructor_lookup"
	IntentCourseLocation   Intent = "course_location"
	IntentCourseTime       Intent = "course_time"
	IntentScheduleQuery    Intent = "schedule_query"
	IntentChitchat         Intent = "chitchat"
	IntentUnknown          Intent = "unknown"
)

// CourseIntents contains the intents that result in a database lookup.
var CourseIntents = map[Intent]bool{
	IntentCourseInfo:       true,
	IntentInstructorLookup: true,
	IntentCourseLocation:   true,
	IntentCourseTime:       true,
	IntentScheduleQuery:    true,
}

// Attribute identifies a course property the user asked about.
type Attribute string

const (
	AttrInstructor Attribute = "instructor"
	AttrTime       Attribute = "time"
	AttrLocation   Attribute = "location"
	AttrInfo       Attribute = "info"
	AttrSchedule   Attribute = "schedule"
	AttrAll        Attribute = "all"
)

// IntentForAttributes picks the database intent matching a set of requested
// attributes, for retargeting clauses whose subject came from context.
func IntentForAttributes(attrs []Attribute) Intent {
	for _, attr := range attrs {
		switch attr {
		case AttrInstructor:
			return IntentInstructorLookup
		case AttrLocation:
			return IntentCourseLocation
		case AttrTime, AttrSchedule:
			return IntentScheduleQuery
		}
	}
	return IntentCourseInfo
}

// Subquery is a single structured intent derived from one clause of a
// possibly multi-clause utterance: the requested attributes plus the
// filter entities that scope the lookup.
type Subquery struct {
	Intent      Intent
	Confidence  float64
	Text        string
	CourseCodes []string
	CourseNames []string
	Instructors []string
	Weekdays    []string
	Section     string
	Attributes  []Attribute
}

// HasFilter reports whether the subquery carries at least one entity that
// can scope a database lookup. Subqueries without any filter are never
// executed; they are dropped with a user-visible note instead.
func (s *Subquery) HasFilter() bool {
	return len(s.CourseCodes) > 0 || len(s.Instructors) > 0 || len(s.Weekdays) > 0
}

// SemanticParse is the full structured reading of one utterance.
type SemanticParse struct {
	PrimaryIntent     Intent
	PrimaryConfidence float64
	MultiQuery        bool
	RawText           string
	CourseCodes       []string
	CourseNames       []string
	Instructors       []string
	Weekdays          []string
	Attributes        []Attribute
	Subqueries        []Subquery
}

// CourseRow is one matching database row, as a column name to value mapping.
type CourseRow map[string]string

// Course returns the course number column, or "" when absent.
func (r CourseRow) Course() string { return r["course_number"] }

// Label is a short human-readable identifier for the row.
func (r CourseRow) Label() string {
	parts := make([]string, 0, 2)
	if c := r["course_number"]; c != "" {
		parts = append(parts, c)
	}
	if s := r["section"]; s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Turn records one completed user/assistant exchange together with the
// compressed context that was active after answering it.
type Turn struct {
	User      string
	Assistant string
	Context   string
	Number    int
	Timestamp time.Time
}

// Centroid is a serialized intent classifier artifact: the mean embedding
// vector of the labeled example utterances for one intent label.
type Centroid struct {
	Id         ID
	Model      string // embedding model the vector was produced with
	Label      string // intent label
	Vector     []float32
	Examples   int // number of examples averaged into the vector
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Tuple returns a string representation of the centroid as "(Model,Label)".
// This is used for generating deterministic IDs.
func (c *Centroid) Tuple() string {
	return "(" + c.Model + "," + c.Label + ")"
}
