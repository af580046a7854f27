package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Schedule ScheduleConfig
	Redis    RedisConfig
	Mail     MailConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
	// Per client IP on write endpoints; 0 disables the limit.
	RateLimitRPS   float64 `envconfig:"RATE_LIMIT_RPS" default:"10"`
	RateLimitBurst int     `envconfig:"RATE_LIMIT_BURST" default:"20"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// Slot hours and roller days are computed in TimeZone.
type ScheduleConfig struct {
	TimeZone      string        `envconfig:"SCHEDULE_TIMEZONE" default:"Asia/Tokyo"`
	RollerEnabled bool          `envconfig:"ROLLER_ENABLED" default:"true"`
	RollerRunAt   string        `envconfig:"ROLLER_RUN_AT" default:"01:00"`
	RollerLockTTL time.Duration `envconfig:"ROLLER_LOCK_TTL" default:"23h"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MailConfig struct {
	From         string `envconfig:"MAIL_FROM" default:"no-reply@stadium-scheduler.local"`
	FromName     string `envconfig:"MAIL_FROM_NAME" default:"Stadium Scheduler"`
	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     string `envconfig:"SMTP_PORT" default:"1025"`
	SMTPUser     string `envconfig:"SMTP_USER" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	QueueKey     string `envconfig:"MAIL_QUEUE_KEY" default:"notifications:mail"`
	MaxAttempts  int    `envconfig:"MAIL_MAX_ATTEMPTS" default:"3"`
	// SMTP sends per second across the dispatcher; 0 means unthrottled.
	SendRate float64 `envconfig:"MAIL_SEND_RATE" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c ScheduleConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// RunAtOffset returns ROLLER_RUN_AT as an offset from local midnight.
func (c ScheduleConfig) RunAtOffset() (time.Duration, error) {
	t, err := time.Parse("15:04", c.RollerRunAt)
	if err != nil {
		return 0, fmt.Errorf("invalid ROLLER_RUN_AT %q (want HH:MM): %w", c.RollerRunAt, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// LoadConfig reads the process environment. Values from ENV_FILE (default .env)
// fill in only what the environment leaves unset; a missing file is fine.
func LoadConfig() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate catches settings that would otherwise fail at wiring time.
func (c Config) Validate() error {
	if len(c.CORS.AllowOrigins) == 0 {
		return errors.New("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	if _, err := c.Schedule.Location(); err != nil {
		return err
	}
	if _, err := c.Schedule.RunAtOffset(); err != nil {
		return err
	}
	return nil
}

// LoadDBConfig reads only the DB_* variables, for commands that never serve.
func LoadDBConfig() (DBConfig, error) {
	if err := loadEnvFile(); err != nil {
		return DBConfig{}, err
	}

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func loadEnvFile() error {
	file := ".env"
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		file = v
	}
	if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", file, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
			MaxConns: 5,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
			ExposeHeaders:    []string{"Content-Length", "Location"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Schedule: ScheduleConfig{
			TimeZone:      "Asia/Tokyo",
			RollerEnabled: false,
			RollerRunAt:   "01:00",
			RollerLockTTL: time.Hour,
		},
		Redis: RedisConfig{
			Addr: "localhost:16379",
		},
		Mail: MailConfig{
			From:        "no-reply@example.com",
			FromName:    "Stadium Scheduler",
			SMTPHost:    "localhost",
			SMTPPort:    "1025",
			QueueKey:    "test:notifications:mail",
			MaxAttempts: 3,
		},
	}
}
