package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env                  string        `mapstructure:"ENV"`
	LogLevel             string        `mapstructure:"LOG_LEVEL"`
	PatientCollection    string        `mapstructure:"PMGMT_COLLECTION"`
	WardCollection       string        `mapstructure:"IPD_WARDS_COLLECTION"`
	DoctorCollection     string        `mapstructure:"DOCTORS_COLLECTION"`
	AdmissionCollection  string        `mapstructure:"IPD_DEPT_COLLECTION"`
	RosterCollection     string        `mapstructure:"IPD_ROSTER_COLLECTION"`
	StoreTimeout         time.Duration `mapstructure:"STORE_TIMEOUT"`
	RosterCron           string        `mapstructure:"ROSTER_CRON"`
	AdmissionCachePrefix string        `mapstructure:"ADMISSION_CACHE_PREFIX"`
	CORSOrigins          []string      `mapstructure:"CORS_ORIGINS"`
}

var keys = []string{
	"ENV",
	"LOG_LEVEL",
	"PMGMT_COLLECTION",
	"IPD_WARDS_COLLECTION",
	"DOCTORS_COLLECTION",
	"IPD_DEPT_COLLECTION",
	"IPD_ROSTER_COLLECTION",
	"STORE_TIMEOUT",
	"ROSTER_CRON",
	"ADMISSION_CACHE_PREFIX",
	"CORS_ORIGINS",
}

// Load reads the service configuration from the environment. The .env file is
// loaded beforehand by main through godotenv.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PMGMT_COLLECTION", "PATIENTS")
	v.SetDefault("IPD_WARDS_COLLECTION", "IPD_WARDS")
	v.SetDefault("DOCTORS_COLLECTION", "DOCTORS")
	v.SetDefault("IPD_DEPT_COLLECTION", "IPD_ADMISSIONS")
	v.SetDefault("IPD_ROSTER_COLLECTION", "IPD_ROSTER")
	v.SetDefault("STORE_TIMEOUT", "5s")
	v.SetDefault("ROSTER_CRON", "5 0 * * *")
	v.SetDefault("ADMISSION_CACHE_PREFIX", "ipd:admission:")
	v.SetDefault("CORS_ORIGINS", "*")

	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// env values arrive as one comma separated string
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	names := map[string]string{
		"PMGMT_COLLECTION":      c.PatientCollection,
		"IPD_WARDS_COLLECTION":  c.WardCollection,
		"DOCTORS_COLLECTION":    c.DoctorCollection,
		"IPD_DEPT_COLLECTION":   c.AdmissionCollection,
		"IPD_ROSTER_COLLECTION": c.RosterCollection,
	}
	for key, val := range names {
		if strings.TrimSpace(val) == "" {
			return fmt.Errorf("config: %s must not be empty", key)
		}
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("config: STORE_TIMEOUT must be positive, got %s", c.StoreTimeout)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
