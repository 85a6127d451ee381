package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern - conservative local@domain.tld
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone validation pattern - leading + then digits, spaces, hyphens, parentheses
	PhonePattern = `^\+[0-9 ()\-]+$`

	// Password min length for registration
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
}

// Roster column keys as they appear in the parsed upload structure.
// The physical CSV/XLSX decoding happens upstream; this package only
// sees column name to string value mappings.
const (
	ColFirstName          = "firstName"
	ColSurname            = "surname"
	ColGender             = "gender"
	ColPhoneNumber        = "phoneNumber"
	ColUniversity         = "university"
	ColCourseOfStudy      = "courseOfStudy"
	ColGraduationYear     = "graduationYear"
	ColFellowship         = "fellowship"
	ColZonalPastor        = "zonalPastor"
	ColChapterPastorName  = "chapterPastorName"
	ColChapterPastorPhone = "chapterPastorPhone"
	ColChapterPastorEmail = "chapterPastorEmail"
)

// columnKind drives the format check applied after the required check
type columnKind int

const (
	kindText columnKind = iota
	kindGender
	kindPhone
	kindEmail
)

type columnRule struct {
	key   string
	label string
	kind  columnKind
}

// rosterColumns declares every required roster column in upload order
var rosterColumns = []columnRule{
	{ColFirstName, "First Name", kindText},
	{ColSurname, "Surname", kindText},
	{ColGender, "Gender", kindGender},
	{ColPhoneNumber, "Phone Number", kindPhone},
	{ColUniversity, "University", kindText},
	{ColCourseOfStudy, "Course of Study", kindText},
	{ColGraduationYear, "Graduation Year", kindText},
	{ColFellowship, "Fellowship", kindText},
	{ColZonalPastor, "Zonal Pastor", kindText},
	{ColChapterPastorName, "Chapter Pastor Name", kindText},
	{ColChapterPastorPhone, "Chapter Pastor Phone", kindPhone},
	{ColChapterPastorEmail, "Chapter Pastor Email", kindEmail},
}

// RowResult is the outcome of validating a single roster row
type RowResult struct {
	Errors  []string `json:"errors"`
	IsValid bool     `json:"isValid"`
}

// ValidateRosterRow validates one parsed roster row against the required
// column and format rules. It never panics and never stops at the first
// problem: every violated rule gets an entry in Errors, each attributable
// to a specific column. IsValid is true exactly when Errors is empty.
func ValidateRosterRow(row map[string]string) RowResult {
	var errs []string

	for _, col := range rosterColumns {
		value := strings.TrimSpace(row[col.key])
		if value == "" {
			errs = append(errs, col.label+" is required")
			continue
		}

		switch col.kind {
		case kindGender:
			// Case-sensitive on purpose: uploads must use the canonical literals
			if value != "MALE" && value != "FEMALE" {
				errs = append(errs, "Gender must be MALE or FEMALE")
			}
		case kindPhone:
			if !CompiledPatterns.Phone.MatchString(value) {
				errs = append(errs, col.label+" must start with + followed by digits, spaces, hyphens or parentheses")
			}
		case kindEmail:
			if !CompiledPatterns.Email.MatchString(value) {
				errs = append(errs, col.label+" must be a valid email address")
			}
		}
	}

	return RowResult{Errors: errs, IsValid: len(errs) == 0}
}

// IsEmail reports whether the value matches the conservative email pattern
func IsEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsPhone reports whether the value matches the phone number pattern
func IsPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}
