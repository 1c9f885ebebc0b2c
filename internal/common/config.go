package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Cache    CacheConfig
	Ingest   IngestConfig
	Crop     CropConfig
	OCR      OCRConfig
	Lexicon  LexiconConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// CacheConfig holds artifact cache configuration
type CacheConfig struct {
	Dir               string
	MaxBytes          int64
	MaxAge            time.Duration
	PreserveOriginals bool
}

// IngestConfig holds document ingest configuration
type IngestConfig struct {
	StorageDir   string
	MaxFileBytes int64
	WatchRoots   []string
}

// CropConfig holds zone cropper configuration
type CropConfig struct {
	Padding int
	OutDir  string
}

// OCRConfig holds text-recognition configuration
type OCRConfig struct {
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	Pdftotext     string
	PSM           int
	OEM           int
}

// LexiconConfig holds lexicon configuration
type LexiconConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Cache: CacheConfig{
			Dir:               getEnv("ARTIFACT_CACHE_DIR", "./cache"),
			MaxBytes:          getEnvAsInt64("ARTIFACT_CACHE_MAX_BYTES", 1<<30),
			MaxAge:            getEnvAsDuration("ARTIFACT_CACHE_MAX_AGE", 720*time.Hour),
			PreserveOriginals: getEnvAsBool("ARTIFACT_CACHE_PRESERVE_ORIGINALS", true),
		},
		Ingest: IngestConfig{
			StorageDir:   getEnv("INGEST_STORAGE_DIR", "./storage"),
			MaxFileBytes: getEnvAsInt64("INGEST_MAX_FILE_BYTES", 50<<20),
			WatchRoots:   getEnvAsSlice("INGEST_WATCH_ROOTS"),
		},
		Crop: CropConfig{
			Padding: getEnvAsInt("CROP_PADDING", 5),
			OutDir:  getEnv("CROP_OUT_DIR", "./storage"),
		},
		OCR: OCRConfig{
			Tesseract:     getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			Pdftotext:     getEnv("PDFTOTEXT_BIN", "pdftotext"),
			PSM:           getEnvAsInt("TESSERACT_PSM", 6),
			OEM:           getEnvAsInt("TESSERACT_OEM", 0),
		},
		Lexicon: LexiconConfig{
			Path: getEnv("LEXICON_PATH", "./lexicon.json"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Cache.Dir == "" {
		return NewAppError("CONFIG_ERROR", "ARTIFACT_CACHE_DIR is required", ErrInvalidInput)
	}
	if c.Cache.MaxBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "ARTIFACT_CACHE_MAX_BYTES must be positive", ErrInvalidInput)
	}
	if c.Ingest.StorageDir == "" {
		return NewAppError("CONFIG_ERROR", "INGEST_STORAGE_DIR is required", ErrInvalidInput)
	}
	if c.Ingest.MaxFileBytes <= 0 {
		return NewAppError("CONFIG_ERROR", "INGEST_MAX_FILE_BYTES must be positive", ErrInvalidInput)
	}
	return nil
}
