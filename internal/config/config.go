package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nbclib/NBC-ReservationService/internal/domain"
)

// Config is the full service configuration loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig holds the HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection settings. An empty host selects
// the in-memory booking store instead.
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// UseMemoryStore reports whether bookings should be kept in process memory.
func (d DatabaseConfig) UseMemoryStore() bool {
	return d.Host == ""
}

// DSN builds the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig holds logger settings.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig overrides the library visit schedule.
type ScheduleConfig struct {
	SlotCount        int      `toml:"slot_count"`
	HorizonDays      int      `toml:"horizon_days"`
	MaxEligibleDates int      `toml:"max_eligible_dates"`
	ClosedWeekdays   []string `toml:"closed_weekdays"`
}

// ToDomain converts the section to a domain schedule, validating ranges and
// weekday names.
func (s ScheduleConfig) ToDomain() (domain.Schedule, error) {
	schedule := domain.DefaultSchedule()

	if s.SlotCount != 0 {
		if s.SlotCount < domain.MinSlotCount || s.SlotCount > domain.MaxSlotCount {
			return domain.Schedule{}, fmt.Errorf("config: slot_count must be in [%d, %d]",
				domain.MinSlotCount, domain.MaxSlotCount)
		}
		schedule.SlotCount = s.SlotCount
	}
	if s.HorizonDays != 0 {
		if s.HorizonDays < domain.MinHorizonDays || s.HorizonDays > domain.MaxHorizonDays {
			return domain.Schedule{}, fmt.Errorf("config: horizon_days must be in [%d, %d]",
				domain.MinHorizonDays, domain.MaxHorizonDays)
		}
		schedule.HorizonDays = s.HorizonDays
	}
	if s.MaxEligibleDates != 0 {
		if s.MaxEligibleDates < 1 {
			return domain.Schedule{}, fmt.Errorf("config: max_eligible_dates must be positive")
		}
		schedule.MaxEligibleDates = s.MaxEligibleDates
	}
	if s.ClosedWeekdays != nil {
		weekdays := make([]time.Weekday, 0, len(s.ClosedWeekdays))
		for _, name := range s.ClosedWeekdays {
			wd, err := parseWeekday(name)
			if err != nil {
				return domain.Schedule{}, err
			}
			weekdays = append(weekdays, wd)
		}
		schedule.ClosedWeekdays = weekdays
	}

	return schedule, nil
}

func parseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	}
	return 0, fmt.Errorf("config: unknown weekday %q", name)
}

// Load reads and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "reservation-service",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return nil, fmt.Errorf("config: invalid http_port %d", cfg.Server.HTTPPort)
	}
	if _, err := cfg.Schedule.ToDomain(); err != nil {
		return nil, err
	}

	return cfg, nil
}
