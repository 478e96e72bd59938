package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/claim-desk/idgen"
	"github.com/danielhkuo/claim-desk/store"
)

type Config struct {
	Port       int     `env:"PORT" envDefault:"3318"`
	StoreType  string  `env:"STORE_TYPE" envDefault:"memory"`
	IDStrategy string  `env:"ID_STRATEGY" envDefault:"ulid"`
	Deductible float64 `env:"PAYOUT_DEDUCTIBLE" envDefault:"500"`
}

// ParseFlags loads the env file, reads the environment, then applies any
// flags that were given on the command line.
func ParseFlags(args []string) (Config, error) {
	var (
		port       int
		storeType  string
		idStrategy string
		deductible float64
		envFile    string
	)

	fs := flag.NewFlagSet("claim-desk", flag.ContinueOnError)
	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&storeType, "s", "", "Claim store (memory or sqlite)")
	fs.StringVar(&idStrategy, "ids", "", "Claim id strategy (ulid, uuid or sequence)")
	fs.Float64Var(&deductible, "deductible", 0, "Deductible used for payout estimates")
	fs.StringVar(&envFile, "env", ".env", "Optional env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	// CLI overrides env
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = port
		case "s":
			cfg.StoreType = storeType
		case "ids":
			cfg.IDStrategy = idStrategy
		case "deductible":
			cfg.Deductible = deductible
		}
	})

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadEnvFile does not override variables already set in the environment.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.StoreType {
	case store.TypeMemory, store.TypeSQLite:
	default:
		return fmt.Errorf("invalid store type %q (use memory or sqlite)", c.StoreType)
	}
	switch c.IDStrategy {
	case idgen.StrategyULID, idgen.StrategyUUID, idgen.StrategySequence:
	default:
		return fmt.Errorf("invalid id strategy %q (use ulid, uuid or sequence)", c.IDStrategy)
	}
	if c.Deductible < 0 {
		return errors.New("deductible must not be negative")
	}
	return nil
}
