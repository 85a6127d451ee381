package services

import (
	"context"

	"github.com/temidayo/servecorps/internal/app/models"
)

// zoneListStore lists the reference zones
type zoneListStore interface {
	GetAll(ctx context.Context) ([]*models.Zone, error)
}

// departmentListStore lists the reference departments
type departmentListStore interface {
	GetAll(ctx context.Context) ([]*models.ServiceDepartment, error)
}

// ReferenceService serves the read-only reference data the portal forms
// are built from
type ReferenceService struct {
	zoneRepo zoneListStore
	deptRepo departmentListStore
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(zoneRepo zoneListStore, deptRepo departmentListStore) *ReferenceService {
	return &ReferenceService{
		zoneRepo: zoneRepo,
		deptRepo: deptRepo,
	}
}

// Zones retrieves all zones
func (s *ReferenceService) Zones(ctx context.Context) ([]*models.Zone, error) {
	zones, err := s.zoneRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if zones == nil {
		zones = []*models.Zone{}
	}
	return zones, nil
}

// Departments retrieves all service departments
func (s *ReferenceService) Departments(ctx context.Context) ([]*models.ServiceDepartment, error) {
	departments, err := s.deptRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []*models.ServiceDepartment{}
	}
	return departments, nil
}
