package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Postgres    PostgresConfig    `mapstructure:"postgres"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MinIO       MinIOConfig       `mapstructure:"minio"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Technician  TechnicianConfig  `mapstructure:"technician"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StorageConfig selects the persistence driver: dynamodb or memory.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
}

func (s StorageConfig) InMemory() bool {
	return strings.EqualFold(s.Driver, "memory")
}

type AWSConfig struct {
	Region          string       `mapstructure:"region"`
	Endpoint        string       `mapstructure:"endpoint"`
	AccessKeyID     string       `mapstructure:"access_key_id"`
	SecretAccessKey string       `mapstructure:"secret_access_key"`
	SessionToken    string       `mapstructure:"session_token"`
	Tables          TablesConfig `mapstructure:"tables"`
}

type TablesConfig struct {
	Orders         string `mapstructure:"orders"`
	ArchivedOrders string `mapstructure:"archived_orders"`
	Templates      string `mapstructure:"templates"`
	Payments       string `mapstructure:"payments"`
	Counters       string `mapstructure:"counters"`
}

type PostgresConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
	LockWait time.Duration `mapstructure:"lock_wait"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type MinIOConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type TechnicianConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Mock        bool   `mapstructure:"mock"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configs/config.yaml when present and overlays the environment.
// A .env file in the working directory is loaded first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("storage.driver", "dynamodb")

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.tables.orders", "orders")
	v.SetDefault("aws.tables.archived_orders", "deleted_orders")
	v.SetDefault("aws.tables.templates", "process_templates")
	v.SetDefault("aws.tables.payments", "payments")
	v.SetDefault("aws.tables.counters", "counters")

	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.lock_ttl", 10*time.Second)
	v.SetDefault("redis.lock_wait", 3*time.Second)

	v.SetDefault("minio.bucket", "service-inventory")

	v.SetDefault("technician.timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

func bindEnvVariables(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")

	v.BindEnv("storage.driver", "STORAGE_DRIVER")

	// AWS / DynamoDB
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.session_token", "AWS_SESSION_TOKEN")
	v.BindEnv("aws.tables.orders", "ORDERS_TABLE")
	v.BindEnv("aws.tables.archived_orders", "ARCHIVED_ORDERS_TABLE")
	v.BindEnv("aws.tables.templates", "PROCESS_TEMPLATES_TABLE")
	v.BindEnv("aws.tables.payments", "PAYMENTS_TABLE")
	v.BindEnv("aws.tables.counters", "COUNTERS_TABLE")

	// Postgres service catalog
	v.BindEnv("postgres.enabled", "CATALOG_DB_ENABLED")
	v.BindEnv("postgres.host", "CATALOG_DB_HOST")
	v.BindEnv("postgres.port", "CATALOG_DB_PORT")
	v.BindEnv("postgres.user", "CATALOG_DB_USER")
	v.BindEnv("postgres.password", "CATALOG_DB_PASSWORD")
	v.BindEnv("postgres.dbname", "CATALOG_DB_NAME")
	v.BindEnv("postgres.sslmode", "CATALOG_DB_SSLMODE")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")

	// MinIO
	v.BindEnv("minio.enabled", "MINIO_ENABLED")
	v.BindEnv("minio.endpoint", "MINIO_ENDPOINT")
	v.BindEnv("minio.access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("minio.secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("minio.bucket", "MINIO_BUCKET")
	v.BindEnv("minio.use_ssl", "MINIO_USE_SSL")
	v.BindEnv("minio.public_base_url", "MINIO_PUBLIC_BASE_URL")

	v.BindEnv("jwt.secret", "JWT_SECRET")

	v.BindEnv("technician.base_url", "TECHNICIAN_SERVICE_URL")
	v.BindEnv("technician.timeout", "TECHNICIAN_SERVICE_TIMEOUT")

	v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("mercadopago.mock", "MERCADOPAGO_MOCK")

	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
}
