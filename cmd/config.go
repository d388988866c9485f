package cmd

import (
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
)

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	DBMaxOpenConns  int
	SeedLocations   string
	SummarySchedule string
}

// DSN returns the lib/pq keyword/value connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}

// SeedLocationCodes parses the comma separated SeedLocations list. The
// receiving dock and the assembly line are always included, first and in
// that order; blanks and duplicates are dropped.
func (c Config) SeedLocationCodes() ([]kernel.Code, error) {
	codes := []kernel.Code{location.Receiving(), location.AssemblyLine()}
	seen := map[string]bool{
		location.ReceivingCode:    true,
		location.AssemblyLineCode: true,
	}

	for _, raw := range strings.Split(c.SeedLocations, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		code, err := kernel.NewCode("SEED_LOCATIONS", raw)
		if err != nil {
			return nil, err
		}

		if seen[code.String()] {
			continue
		}
		seen[code.String()] = true
		codes = append(codes, code)
	}

	return codes, nil
}
