package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/etnz/finanflow/date"
	"github.com/joho/godotenv"
)

// Environment variables read at startup, a .env file in the working
// directory may define them too.
const (
	EnvData       = "FINANFLOW_DATA"
	EnvStore      = "FINANFLOW_STORE"
	EnvCurrency   = "FINANFLOW_CURRENCY"
	EnvEnv        = "FINANFLOW_ENV"
	EnvTestingNow = "FINANFLOW_TESTING_NOW"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataPath        = flag.String("data", "", "Path to the data folder (file store) or database (sqlite store). Defaults to $"+EnvData+" or .finanflow")
	storeKind       = flag.String("store", "", "Storage backend: file or sqlite. Defaults to $"+EnvStore+" or file")
	defaultCurrency = flag.String("currency", "", "Currency used to display amounts. Defaults to $"+EnvCurrency+" or BRL")
	Verbose         = flag.Bool("v", false, "Log everything, including debug messages")
)

// LoadEnv loads the .env file of the working directory, if any. It must be
// called before flags are parsed.
func LoadEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}
	return nil
}

// setting returns the flag value when set, the environment value otherwise,
// def as a last resort.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// Config is the resolved configuration of the application.
type Config struct {
	Data     string
	Store    string
	Currency string
	Env      string
}

// Settings resolves the configuration from flags, environment and defaults.
func Settings() Config {
	c := Config{
		Store:    setting(*storeKind, EnvStore, "file"),
		Currency: setting(*defaultCurrency, EnvCurrency, "BRL"),
		Env:      setting("", EnvEnv, "development"),
	}
	def := ".finanflow"
	if c.Store == "sqlite" {
		def = "finanflow.db"
	}
	c.Data = setting(*dataPath, EnvData, def)
	if *Verbose {
		c.Env = "debug"
	}
	return c
}

// today returns the current day. $FINANFLOW_TESTING_NOW overrides it with a
// fixed "2006-01-02 15:04:05" time so that documentation examples are stable.
func today() date.Date {
	return date.New(now().Date())
}

func now() time.Time {
	if v := os.Getenv(EnvTestingNow); v != "" {
		if t, err := time.Parse(time.DateTime, v); err == nil {
			return t
		}
	}
	return time.Now()
}
