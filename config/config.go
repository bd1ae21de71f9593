package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName     string
	Port        string
	StoreDriver string
	DatabaseURL string
	JWTSecret   string
	LogLevel    string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	RedisAddr          string
	LoginAttemptLimit  int
	LoginAttemptWindow time.Duration

	OTPSweepSchedule string
	PasswordMode     string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string

	SeedAdminEmail    string
	SeedAdminPassword string
}

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	PasswordPlaintext = "plaintext"
	PasswordBcrypt    = "bcrypt"
)

// Load reads .env (when present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		v := getenv(k)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Warning: invalid %s=%q, using %d", k, v, def)
			return def
		}
		return n
	}
	getDuration := func(k string, def time.Duration) time.Duration {
		v := getenv(k)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Warning: invalid %s=%q, using %s", k, v, def)
			return def
		}
		return d
	}

	cfg := Config{
		AppName:     get("APP_NAME", "backoffice-api"),
		Port:        get("PORT", "8000"),
		StoreDriver: get("STORE_DRIVER", DriverPostgres),
		DatabaseURL: getenv("DATABASE_URL"),
		JWTSecret:   get("JWT_SECRET", "solid_secret_key"),
		LogLevel:    get("LOG_LEVEL", "info"),

		SMTPHost:  getenv("SMTP_HOST"),
		SMTPPort:  getInt("SMTP_PORT", 587),
		EmailUser: getenv("EMAIL_USER"),
		EmailPass: getenv("EMAIL_PASS"),

		RedisAddr:          getenv("REDIS_ADDR"),
		LoginAttemptLimit:  getInt("LOGIN_ATTEMPT_LIMIT", 5),
		LoginAttemptWindow: getDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),

		OTPSweepSchedule: get("OTP_SWEEP_SCHEDULE", "* * * * *"),
		PasswordMode:     get("PASSWORD_MODE", PasswordPlaintext),

		CloudinaryCloudName:    getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: getenv("CLOUDINARY_UPLOAD_PRESET"),

		SeedAdminEmail:    get("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminPassword: get("SEED_ADMIN_PASSWORD", "admin1234"),
	}
	if cfg.PasswordMode != PasswordBcrypt {
		cfg.PasswordMode = PasswordPlaintext
	}
	return cfg
}

// OTPSweepEnabled is false when OTP_SWEEP_SCHEDULE is set to "off".
func (c Config) OTPSweepEnabled() bool {
	return c.OTPSweepSchedule != "off"
}
