package validation

import (
	"strings"
	"testing"
)

func completeRow() map[string]string {
	return map[string]string{
		ColFirstName:          "John",
		ColSurname:            "Doe",
		ColGender:             "MALE",
		ColPhoneNumber:        "+234 801 234 5678",
		ColUniversity:         "University of Lagos",
		ColCourseOfStudy:      "Computer Science",
		ColGraduationYear:     "2025",
		ColFellowship:         "Campus Fellowship",
		ColZonalPastor:        "Pastor A",
		ColChapterPastorName:  "Pastor B",
		ColChapterPastorPhone: "+2348011112222",
		ColChapterPastorEmail: "pastor.b@example.com",
	}
}

func TestValidateRosterRowValid(t *testing.T) {
	result := ValidateRosterRow(completeRow())
	if !result.IsValid {
		t.Fatalf("expected valid row, got errors %v", result.Errors)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("IsValid true but Errors non-empty: %v", result.Errors)
	}
}

func TestValidateRosterRowMissingField(t *testing.T) {
	row := completeRow()
	row[ColSurname] = ""

	result := ValidateRosterRow(row)
	if result.IsValid {
		t.Fatal("expected invalid row")
	}
	if len(result.Errors) != 1 || result.Errors[0] != "Surname is required" {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
}

func TestValidateRosterRowWhitespaceOnlyIsMissing(t *testing.T) {
	row := completeRow()
	row[ColFirstName] = "   "

	result := ValidateRosterRow(row)
	if result.IsValid {
		t.Fatal("whitespace-only value must count as missing")
	}
}

func TestValidateRosterRowGenderCaseSensitive(t *testing.T) {
	for _, value := range []string{"male", "Female", "M", "OTHER"} {
		row := completeRow()
		row[ColGender] = value

		result := ValidateRosterRow(row)
		if result.IsValid {
			t.Fatalf("gender %q must be rejected", value)
		}
		if result.Errors[0] != "Gender must be MALE or FEMALE" {
			t.Fatalf("unexpected message for %q: %v", value, result.Errors)
		}
	}

	for _, value := range []string{"MALE", "FEMALE"} {
		row := completeRow()
		row[ColGender] = value
		if result := ValidateRosterRow(row); !result.IsValid {
			t.Fatalf("gender %q must be accepted, got %v", value, result.Errors)
		}
	}
}

func TestValidateRosterRowPhoneFormat(t *testing.T) {
	valid := []string{"+2348012345678", "+234 (0) 801-234-5678", "+1 555 0100"}
	for _, value := range valid {
		row := completeRow()
		row[ColPhoneNumber] = value
		if result := ValidateRosterRow(row); !result.IsValid {
			t.Fatalf("phone %q must be accepted, got %v", value, result.Errors)
		}
	}

	invalid := []string{"08012345678", "2348012345678", "+234801x5678", "++234"}
	for _, value := range invalid {
		row := completeRow()
		row[ColPhoneNumber] = value
		if result := ValidateRosterRow(row); result.IsValid {
			t.Fatalf("phone %q must be rejected", value)
		}
	}
}

func TestValidateRosterRowEmailFormat(t *testing.T) {
	invalid := []string{"pastor", "pastor@", "@example.com", "pastor@example", "pastor @example.com"}
	for _, value := range invalid {
		row := completeRow()
		row[ColChapterPastorEmail] = value
		if result := ValidateRosterRow(row); result.IsValid {
			t.Fatalf("email %q must be rejected", value)
		}
	}
}

func TestValidateRosterRowReportsAllViolations(t *testing.T) {
	row := map[string]string{}

	result := ValidateRosterRow(row)
	if result.IsValid {
		t.Fatal("empty row must be invalid")
	}
	if len(result.Errors) != len(rosterColumns) {
		t.Fatalf("expected one error per column, got %d: %v", len(result.Errors), result.Errors)
	}
	for _, msg := range result.Errors {
		if !strings.HasSuffix(msg, "is required") {
			t.Fatalf("unexpected message: %q", msg)
		}
	}
}

func TestValidateRosterRowIgnoresExtraColumns(t *testing.T) {
	row := completeRow()
	row["nickname"] = "JD"

	if result := ValidateRosterRow(row); !result.IsValid {
		t.Fatalf("extra columns must be ignored, got %v", result.Errors)
	}
}
