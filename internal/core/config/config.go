package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const DefaultPath = "./configs/config.local.yaml"

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int

	RateLimitRPS      float64
	RateLimitBurst    int
	RateLimitPerIP    bool
	MaxInFlight       int64
	RequestTimeoutSec int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotation via lumberjack when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type Redis struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type DB struct {
	Driver             string
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Seed tunes cmd/seed.
type Seed struct {
	Concurrency      int    `mapstructure:"concurrency"`
	ReviewMode       string `mapstructure:"review_mode"` // "append" | "keyed"
	AdminPassword    string `mapstructure:"admin_password"`
	CustomerPassword string `mapstructure:"customer_password"`
}

// Setup tunes cmd/setup. Commands are split on whitespace.
type Setup struct {
	ProjectDir string `mapstructure:"project_dir"`
	EnvFile    string `mapstructure:"env_file"`
	Codegen    string `mapstructure:"codegen"`
	Schema     string `mapstructure:"schema"`
	Seed       string `mapstructure:"seed"`
}

type Config struct {
	App   App
	Log   Log
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Seed  Seed  `mapstructure:"seed"`
	Setup Setup `mapstructure:"setup"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "housemax")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8080)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.ratelimitrps", 200)
	v.SetDefault("app.http.ratelimitburst", 400)
	v.SetDefault("app.http.maxinflight", 300)
	v.SetDefault("app.http.requesttimeoutsec", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 5)
	v.SetDefault("log.maxagedays", 14)

	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.maxopenconns", 10)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("redis.ttl_seconds", 60)

	v.SetDefault("seed.concurrency", 4)
	v.SetDefault("seed.review_mode", "append")

	v.SetDefault("setup.project_dir", ".")
	v.SetDefault("setup.env_file", ".env")
	v.SetDefault("setup.codegen", "go generate ./...")
	v.SetDefault("setup.schema", "go run ./cmd/migrate")
	v.SetDefault("setup.seed", "go run ./cmd/seed")
}

// Read loads path (or CONFIG_PATH, or DefaultPath) and overlays APP_* env vars.
// A missing file is not an error; defaults and env still apply.
func Read(path string) (*Config, error) {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = DefaultPath
		}
	}
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	_ = v.BindEnv("db.dsn", "APP_DB_DSN", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) *Config {
	c, err := Read(path)
	if err != nil {
		log.Fatalf("read config: %v", err)
	}
	return c
}
