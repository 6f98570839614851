package service

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/stocknote/stock-dashboard-backend/internal/database"
	"github.com/stocknote/stock-dashboard-backend/internal/model"
)

// AppVersion is the application version reported by the system endpoints.
const AppVersion = "1.2.0"

// SystemService handles system-related operations like health checks
// and version information.
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// CheckHealth verifies database connectivity.
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and the applied schema
// migration version.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := goose.GetDBVersion(s.db)
	if err != nil {
		return model.VersionInfo{}, fmt.Errorf("failed to read schema version: %w", err)
	}

	return model.VersionInfo{
		AppVersion: AppVersion,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
	}, nil
}
