package services

// Services defined in this package:
// - RosterService: batch ingestion of zone rosters and claim search
// - GraduateService: roster row claiming, the review pipeline and assignments
// - StaffRequestService: department headcount requests and fulfillment tracking
// - AuthService: portal login
//
// Each service consumes narrow store interfaces satisfied by the concrete
// repositories, so business rules stay testable without a database.
