package service

import (
	"database/sql"

	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/database"
	"github.com/mfplanner/MutualFunds-Allocation-Planner-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// VersionInfo describes the running application and schema versions.
type VersionInfo struct {
	AppVersion    string
	SchemaVersion int64
}

// CheckVersion returns the application version and applied schema version.
func (s *SystemService) CheckVersion() (VersionInfo, error) {
	schemaVersion, err := database.SchemaVersion(s.db)
	if err != nil {
		return VersionInfo{}, err
	}

	return VersionInfo{
		AppVersion:    version.Version,
		SchemaVersion: schemaVersion,
	}, nil
}
