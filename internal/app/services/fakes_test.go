package services

import (
	"context"
	"sync"
	"time"

	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/pkg/apperrors"
)

// In-memory stores used by the service tests. The graduate fake claims
// roster rows under the roster fake's lock, mirroring the conditional
// update the real store performs.

type fakeZoneStore struct {
	zones map[int64]bool
}

func newFakeZoneStore(ids ...int64) *fakeZoneStore {
	z := &fakeZoneStore{zones: map[int64]bool{}}
	for _, id := range ids {
		z.zones[id] = true
	}
	return z
}

func (f *fakeZoneStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	return f.zones[id], nil
}

type fakeDepartmentStore struct {
	departments map[int64]*models.ServiceDepartment
}

func newFakeDepartmentStore(ids ...int64) *fakeDepartmentStore {
	d := &fakeDepartmentStore{departments: map[int64]*models.ServiceDepartment{}}
	for _, id := range ids {
		d.departments[id] = &models.ServiceDepartment{ID: id, Name: "Media"}
	}
	return d
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.ServiceDepartment, error) {
	dept, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}

type fakeRosterStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*models.RosterRow
}

func newFakeRosterStore() *fakeRosterStore {
	return &fakeRosterStore{rows: map[int64]*models.RosterRow{}}
}

func (f *fakeRosterStore) Create(_ context.Context, row *models.RosterRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	row.ID = f.nextID
	row.CreatedAt = time.Now()
	stored := *row
	f.rows[row.ID] = &stored
	return nil
}

func (f *fakeRosterStore) GetByID(_ context.Context, id int64) (*models.RosterRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.ErrRosterRowNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeRosterStore) Search(_ context.Context, zoneID int64, surname, gender, phoneNumber string) ([]*models.RosterRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matches []*models.RosterRow
	for _, row := range f.rows {
		if row.ZoneID == zoneID && row.Surname == surname && row.Gender == gender && row.PhoneNumber == phoneNumber {
			copied := *row
			matches = append(matches, &copied)
		}
	}
	return matches, nil
}

func (f *fakeRosterStore) CountByBatch(_ context.Context, batchID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, row := range f.rows {
		if row.BatchID == batchID {
			count++
		}
	}
	return count, nil
}

// claim marks the row claimed only if it is not already, like the
// conditional UPDATE in the real store.
func (f *fakeRosterStore) claim(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return apperrors.ErrRosterRowNotFound
	}
	if row.Claimed {
		return apperrors.ErrAlreadyClaimed
	}
	now := time.Now()
	row.Claimed = true
	row.ClaimedAt = &now
	return nil
}

type fakeGraduateStore struct {
	mu       sync.Mutex
	roster   *fakeRosterStore
	nextID   int64
	profiles map[int64]*models.GraduateProfile

	assignDepartmentErr error // when set, AssignDepartment fails with it
}

func newFakeGraduateStore(roster *fakeRosterStore) *fakeGraduateStore {
	return &fakeGraduateStore{roster: roster, profiles: map[int64]*models.GraduateProfile{}}
}

func (f *fakeGraduateStore) Bind(_ context.Context, profile *models.GraduateProfile) error {
	if err := f.roster.claim(profile.RosterRowID); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	profile.ID = f.nextID
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = profile.CreatedAt
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeGraduateStore) GetByID(_ context.Context, id int64) (*models.GraduateProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.ErrGraduateNotFound
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeGraduateStore) List(_ context.Context, offset uint64, limit int) ([]*models.GraduateProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var profiles []*models.GraduateProfile
	for _, p := range f.profiles {
		copied := *p
		profiles = append(profiles, &copied)
	}
	return profiles, nil
}

func (f *fakeGraduateStore) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.profiles)), nil
}

func (f *fakeGraduateStore) UpdateStatus(_ context.Context, id int64, status models.ApplicationStatus, startedDate *time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[id]
	if !ok {
		return apperrors.ErrGraduateNotFound
	}
	profile.Status = status
	if startedDate != nil && profile.ServiceStartedDate == nil {
		profile.ServiceStartedDate = startedDate
	}
	return nil
}

func (f *fakeGraduateStore) AssignDepartment(_ context.Context, id, departmentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.assignDepartmentErr != nil {
		return f.assignDepartmentErr
	}
	profile, ok := f.profiles[id]
	if !ok {
		return apperrors.ErrGraduateNotFound
	}
	profile.ServiceDepartmentID = &departmentID
	return nil
}

func (f *fakeGraduateStore) CompleteService(_ context.Context, id int64, completedDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	profile, ok := f.profiles[id]
	if !ok {
		return apperrors.ErrGraduateNotFound
	}
	if profile.ServiceCompletedDate == nil {
		profile.ServiceCompletedDate = &completedDate
	}
	return nil
}

type fakeStaffRequestStore struct {
	mu          sync.Mutex
	nextID      int64
	requests    map[int64]*models.StaffRequest
	assignments map[int64]int64 // graduate id -> request id
}

func newFakeStaffRequestStore() *fakeStaffRequestStore {
	return &fakeStaffRequestStore{
		requests:    map[int64]*models.StaffRequest{},
		assignments: map[int64]int64{},
	}
}

func (f *fakeStaffRequestStore) Create(_ context.Context, request *models.StaffRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	request.ID = f.nextID
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	stored := *request
	f.requests[request.ID] = &stored
	return nil
}

func (f *fakeStaffRequestStore) GetByID(_ context.Context, id int64) (*models.StaffRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrStaffRequestNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeStaffRequestStore) List(_ context.Context, status models.StaffRequestStatus, departmentID int64) ([]*models.StaffRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.StaffRequest
	for _, r := range f.requests {
		if status != "" && r.Status != status {
			continue
		}
		if departmentID != 0 && r.DepartmentID != departmentID {
			continue
		}
		copied := *r
		requests = append(requests, &copied)
	}
	return requests, nil
}

func (f *fakeStaffRequestStore) UpdateStatus(_ context.Context, id int64, status models.StaffRequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return apperrors.ErrStaffRequestNotFound
	}
	request.Status = status
	return nil
}

func (f *fakeStaffRequestStore) IncrementFulfillment(_ context.Context, id int64) (*models.StaffRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrStaffRequestNotFound
	}
	if request.FulfilledCount >= request.NumberOfStaff {
		return nil, apperrors.ErrOverfulfilled
	}
	request.FulfilledCount++
	if request.FulfilledCount == request.NumberOfStaff {
		request.Status = models.RequestFulfilled
	}
	copied := *request
	return &copied, nil
}

func (f *fakeStaffRequestStore) DecrementFulfillment(_ context.Context, id int64) (*models.StaffRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrStaffRequestNotFound
	}
	if request.FulfilledCount == 0 {
		return nil, apperrors.ErrNothingFulfilled
	}
	request.FulfilledCount--
	if request.Status == models.RequestFulfilled {
		request.Status = models.RequestApproved
	}
	copied := *request
	return &copied, nil
}

func (f *fakeStaffRequestStore) RecordAssignment(_ context.Context, graduateID, requestID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[graduateID] = requestID
	return nil
}

type fakeUserStore struct {
	users      map[string]*models.User
	lastLogins map[int64]time.Time
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: map[string]*models.User{}, lastLogins: map[int64]time.Time{}}
	for _, u := range users {
		f.users[u.Email] = u
	}
	return f
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) UpdateLastLogin(_ context.Context, userID int64) error {
	f.lastLogins[userID] = time.Now()
	return nil
}
