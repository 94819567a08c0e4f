package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"5000"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	DBHost     string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort     int    `envconfig:"DB_PORT" default:"3306"`
	DBUser     string `envconfig:"DB_USER" default:"root"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"hod_management"`
	DebugSQL   bool   `envconfig:"DEBUG_SQL"`

	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	SMTPHost     string `envconfig:"SMTP_HOST"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string `envconfig:"SMTP_FROM"`
	FrontendURL  string `envconfig:"FRONTEND_URL" default:"http://localhost:3000"`

	LogFile string `envconfig:"LOG_FILE" default:"logs/hod-api.log"`

	// Account created by the seeder. No password means no admin is seeded.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminEmail    string `envconfig:"ADMIN_EMAIL" default:"admin@hod.local"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
	AdminName     string `envconfig:"ADMIN_NAME" default:"Administrator"`

	// Placeholder figures reported by the dashboard when a figure cannot be computed.
	FallbackAttendanceRate    int   `envconfig:"DASHBOARD_FALLBACK_ATTENDANCE_RATE" default:"95"`
	FallbackDistricts         int64 `envconfig:"DASHBOARD_FALLBACK_DISTRICTS" default:"33"`
	FallbackBeneficiaries     int64 `envconfig:"DASHBOARD_FALLBACK_BENEFICIARIES" default:"2500000"`
	FallbackNodalOfficers     int64 `envconfig:"DASHBOARD_FALLBACK_NODAL_OFFICERS" default:"12"`
	FallbackHODNodalOfficers  int64 `envconfig:"DASHBOARD_FALLBACK_HOD_NODAL_OFFICERS" default:"1"`
	FallbackBudgetUtilization int   `envconfig:"DASHBOARD_FALLBACK_BUDGET_UTILIZATION" default:"0"`
}

// Load reads .env (when present) and decodes the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env not found, using system environment variables")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
