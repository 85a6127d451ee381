package models

import "time"

// Gender values accepted on roster rows. Matching is case-sensitive.
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
)

// RosterRow defines one uploaded graduate identity record based on the
// 'zone_roster' table. A row is owned by the uploading zone and is mutated
// exactly once in its lifetime: unclaimed to claimed, by the registration
// binder. Identity fields stay immutable after the claim.
type RosterRow struct {
	ID                 int64      `json:"id" db:"id" example:"1"`                                                      // Unique identifier for the roster row
	ZoneID             int64      `json:"zoneId" db:"zone_id" example:"3"`                                             // Owning zone
	BatchID            string     `json:"batchId" db:"batch_id" example:"1d3f9c0a-8b9e-4f4d-9a36-1f6a2b9d0c11"`        // Upload batch reference
	FirstName          string     `json:"firstName" db:"first_name" example:"John"`                                    // Graduate's first name
	Surname            string     `json:"surname" db:"surname" example:"Doe"`                                          // Graduate's surname
	Gender             string     `json:"gender" db:"gender" example:"MALE"`                                           // MALE or FEMALE
	PhoneNumber        string     `json:"phoneNumber" db:"phone_number" example:"+2348012345678"`                      // Graduate's phone number
	University         string     `json:"university" db:"university" example:"University of Lagos"`                    // University attended
	CourseOfStudy      string     `json:"courseOfStudy" db:"course_of_study" example:"Computer Science"`               // Course studied
	GraduationYear     int        `json:"graduationYear" db:"graduation_year" example:"2025"`                          // Year of graduation
	Fellowship         string     `json:"fellowship" db:"fellowship" example:"Campus Fellowship"`                      // Fellowship attended
	ZonalPastor        string     `json:"zonalPastor" db:"zonal_pastor" example:"Pastor A. Williams"`                  // Zonal pastor's name
	ChapterPastorName  string     `json:"chapterPastorName" db:"chapter_pastor_name" example:"Pastor B. Okon"`         // Chapter pastor's name
	ChapterPastorPhone string     `json:"chapterPastorPhone" db:"chapter_pastor_phone" example:"+2348098765432"`       // Chapter pastor's phone
	ChapterPastorEmail string     `json:"chapterPastorEmail" db:"chapter_pastor_email" example:"b.okon@example.org"`   // Chapter pastor's email
	Claimed            bool       `json:"claimed" db:"claimed" example:"false"`                                        // Whether a graduate has claimed this row
	ClaimedAt          *time.Time `json:"claimedAt,omitempty" db:"claimed_at" example:"2026-02-01T09:30:00Z"`          // When the row was claimed (nullable)
	CreatedAt          time.Time  `json:"createdAt" db:"created_at" example:"2026-01-15T10:00:00Z"`                    // When the row was ingested

	Zone *Zone `json:"zone,omitempty"` // Relation, no db tag
}
