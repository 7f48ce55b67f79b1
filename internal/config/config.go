package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	LogLevel     string
	ListenAddr   string
	StorageKind  string
	PostgresDSN  string
	SQLitePath   string
	CheckinsFile string
	NotesFile    string
	ContactsFile string
	AuthToken    string
	AuthURL      string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:          getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ListenAddr:   getEnv("LISTEN_ADDR", ":8088"),
			StorageKind:  getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:  getEnv("POSTGRES_DSN", ""),
			SQLitePath:   getEnv("SQLITE_PATH", "data/lifeos.db"),
			CheckinsFile: getEnv("CHECKINS_FILE", "data/checkins.json"),
			NotesFile:    getEnv("NOTES_FILE", "data/notes.json"),
			ContactsFile: getEnv("CONTACTS_FILE", "data/contacts.json"),
			AuthToken:    getEnv("AUTH_TOKEN", "MOCK-TOKEN"),
			AuthURL:      getEnv("AUTH_SERVICE_URL", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageKind {
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required when STORAGE_BACKEND=sqlite")
		}
	case "file":
		if c.CheckinsFile == "" || c.NotesFile == "" || c.ContactsFile == "" {
			return errors.New("File storage requires CHECKINS_FILE, NOTES_FILE and CONTACTS_FILE to be set")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: file, sqlite, postgres")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
