package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Host        string
	Port        int
	StoreType   string
	DatabaseURL string
	AMQPURL     string
	AMQPQueue   string
}

// Addr returns the listen address
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ParseFlags parses CLI flags, falling back to the environment (and an
// optional .env file) for anything not given on the command line
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var port string
	var envFile string

	fs := flag.NewFlagSet("ballotbox", flag.ContinueOnError)

	// Network config
	fs.StringVar(&cfg.Host, "host", "", "Listen host")
	fs.StringVar(&port, "p", "", "Server port")

	// Storage
	fs.StringVar(&cfg.StoreType, "s", "", "Store type (memory, sqlite or postgres)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite or postgres)")

	// Events
	fs.StringVar(&cfg.AMQPURL, "amqp", "", "RabbitMQ URL for mutation events (optional)")
	fs.StringVar(&cfg.AMQPQueue, "queue", "", "RabbitMQ queue name")

	fs.StringVar(&envFile, "env-file", ".env", "Environment file to load if present")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing env vars win over the file
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "3030")
	v.SetDefault("store_type", StoreMemory)
	v.SetDefault("amqp_queue", "ballotbox")

	// Fall back to environment variables
	if cfg.Host == "" {
		cfg.Host = v.GetString("host")
	}
	if port == "" {
		port = v.GetString("port")
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return Config{}, fmt.Errorf("invalid port %q", port)
	}
	cfg.Port = p

	if cfg.StoreType == "" {
		cfg.StoreType = v.GetString("store_type")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = v.GetString("database_url")
	}
	if cfg.AMQPURL == "" {
		cfg.AMQPURL = v.GetString("amqp_url")
	}
	if cfg.AMQPQueue == "" {
		cfg.AMQPQueue = v.GetString("amqp_queue")
	}

	switch cfg.StoreType {
	case StoreMemory:
	case StoreSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = ":memory:"
		}
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	return cfg, nil
}
