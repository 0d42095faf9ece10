package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"FlowerShop/store"
)

const (
	DefaultPath = "config/config.yaml"
	PathEnv     = "STOREFRONT_CONFIG"
)

type ServerConfig struct {
	Addr      string `yaml:"addr"`
	StaticDir string `yaml:"staticDir"`
}

type StoreConfig struct {
	Driver string `yaml:"driver"` // memory, redis, mysql or sqlite
}

type DatabaseConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	Database int           `yaml:"database"`
	Prefix   string        `yaml:"prefix"`
	TTL      time.Duration `yaml:"ttl"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type SessionConfig struct {
	CookieName string        `yaml:"cookieName"`
	Secret     string        `yaml:"secret"`
	MaxAge     time.Duration `yaml:"maxAge"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
}

// Default is the configuration used for fields the file leaves empty.
func Default() Config {
	return Config{
		Server:  ServerConfig{Addr: ":3000", StaticDir: "./static"},
		Store:   StoreConfig{Driver: "sqlite"},
		Redis:   RedisConfig{Addr: "localhost:6379", Prefix: "storefront:"},
		SQLite:  SQLiteConfig{Path: "storefront.db"},
		Session: SessionConfig{CookieName: "anonymous_cart_id", MaxAge: 30 * 24 * time.Hour},
		Log:     LogConfig{Level: "info"},
	}
}

func LoadConfig(filename string) (Config, error) {
	config := Default()
	file, err := os.Open(filename)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode %s: %w", filename, err)
	}

	if config.Session.Secret == "" {
		return config, fmt.Errorf("%s: session.secret is required", filename)
	}
	return config, nil
}

// Path is the config file named by STOREFRONT_CONFIG, or DefaultPath.
func Path() string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}
	return DefaultPath
}

func SetupLogger(config Config) (*zap.Logger, error) {
	var zc zap.Config
	if config.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	if config.Log.Level != "" {
		level, err := zap.ParseAtomicLevel(config.Log.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		zc.Level = level
	}
	return zc.Build()
}

func SetupMySQLConnection(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
	)

	return gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func SetupRedisConnection(ctx context.Context, config Config) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.Database,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		redisClient.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return redisClient, nil
}

// SetupStore opens the cart store selected by store.driver. The returned
// closer releases its connections.
func SetupStore(ctx context.Context, config Config) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch config.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), noop, nil
	case "redis":
		rdb, err := SetupRedisConnection(ctx, config)
		if err != nil {
			return nil, noop, err
		}
		return store.NewRedisStore(rdb, config.Redis.Prefix, config.Redis.TTL), rdb.Close, nil
	case "mysql":
		db, err := SetupMySQLConnection(config)
		if err != nil {
			return nil, noop, fmt.Errorf("connect mysql: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}
		s, err := store.NewGormStore(db)
		if err != nil {
			sqlDB.Close()
			return nil, noop, err
		}
		return s, sqlDB.Close, nil
	case "sqlite", "":
		s, err := store.OpenSQLite(ctx, config.SQLite.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown store driver %q", config.Store.Driver)
	}
}
