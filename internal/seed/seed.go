package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/repositories"
	"github.com/temidayo/servecorps/internal/pkg/auth"
)

// CreateDefaultData seeds the reference zones and departments and the
// default portal accounts. Everything is idempotent so startup can run
// it unconditionally.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (zones, departments, accounts)...")
	var finalErr error

	zones := []struct {
		name, code, region string
	}{
		{"Lagos Zone", "LAG", "South West"},
		{"Abuja Zone", "ABJ", "North Central"},
		{"Port Harcourt Zone", "PHC", "South South"},
		{"Kano Zone", "KAN", "North West"},
		{"Enugu Zone", "ENU", "South East"},
	}
	for _, z := range zones {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO zones (name, code, region)
			VALUES ($1, $2, $3)
			ON CONFLICT (code) DO NOTHING`,
			z.name, z.code, z.region)
		if err != nil {
			lgr.Error().Err(err).Str("zone", z.code).Msg("Error seeding zone")
			finalErr = errors.Join(finalErr, err)
		}
	}

	departments := []struct {
		name, description string
	}{
		{"Media", "Video, sound and livestream production"},
		{"Publications", "Editorial and print work"},
		{"Protocol", "Event logistics and guest care"},
		{"ICT", "Software and infrastructure support"},
		{"Music", "Choir and instrumentalists"},
	}
	for _, d := range departments {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO service_departments (name, description)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING`,
			d.name, d.description)
		if err != nil {
			lgr.Error().Err(err).Str("department", d.name).Msg("Error seeding department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := createDefaultAccounts(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

// createDefaultAccounts creates one account per role when missing. The
// passwords are development defaults and must be rotated in production.
func createDefaultAccounts(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)
	var finalErr error

	accounts := []struct {
		email    string
		password string
		role     models.RoleType
		zoneCode string
		deptName string
	}{
		{"office@servecorps.org", "Office123!", models.RoleOffice, "", ""},
		{"lagos.zone@servecorps.org", "Zone123!", models.RoleZone, "LAG", ""},
		{"media.dept@servecorps.org", "Dept123!", models.RoleDepartment, "", "Media"},
	}

	for _, a := range accounts {
		exists, err := userRepo.EmailExists(ctx, a.email)
		if err != nil {
			lgr.Error().Err(err).Str("email", a.email).Msg("Error checking account existence")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(a.password)
		if err != nil {
			lgr.Error().Err(err).Str("email", a.email).Msg("Error hashing account password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &models.User{
			Email:        a.email,
			PasswordHash: hash,
			Role:         a.role,
			IsActive:     true,
		}

		if a.zoneCode != "" {
			var zoneID int64
			if err := dbPool.QueryRow(ctx,
				`SELECT id FROM zones WHERE code = $1`, a.zoneCode).Scan(&zoneID); err != nil {
				lgr.Error().Err(err).Str("zone", a.zoneCode).Msg("Error resolving zone for account")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			user.ZoneID = &zoneID
		}

		if a.deptName != "" {
			var deptID int64
			if err := dbPool.QueryRow(ctx,
				`SELECT id FROM service_departments WHERE name = $1`, a.deptName).Scan(&deptID); err != nil {
				lgr.Error().Err(err).Str("department", a.deptName).Msg("Error resolving department for account")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			user.DepartmentID = &deptID
		}

		if err := userRepo.Create(ctx, user); err != nil {
			lgr.Error().Err(err).Str("email", a.email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		lgr.Info().Str("email", a.email).Str("role", string(a.role)).Msg("Default account created")
	}

	return finalErr
}
