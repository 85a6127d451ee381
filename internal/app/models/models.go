package models

// Models defined in this package:
// - Zone: regional office that uploads graduate rosters
// - RosterRow: one uploaded, claimable graduate identity record
// - GraduateProfile: full registration bound to exactly one roster row
// - ServiceDepartment: unit that requests and receives assigned graduates
// - StaffRequest: department headcount request with fulfillment tracking
// - User: portal account (zone / office / department roles)
