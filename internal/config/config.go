package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
}

type AppConfig struct {
	OutputDir   string
	CompanyID   int
	CreatedBy   int
	LogLevel    string
	MappingFile string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("APP_OUTPUT_DIR", "./output")
		viper.SetDefault("APP_COMPANY_ID", 1)
		viper.SetDefault("APP_CREATED_BY", 1)
		viper.SetDefault("APP_LOG_LEVEL", "info")
		viper.SetDefault("APP_MAPPING_FILE", "")
		viper.SetDefault("STORAGE_ENDPOINT", "")
		viper.SetDefault("STORAGE_ACCESS_KEY", "")
		viper.SetDefault("STORAGE_SECRET_KEY", "")
		viper.SetDefault("STORAGE_BUCKET", "")
		viper.SetDefault("STORAGE_REGION", "us-east-1")
		viper.SetDefault("STORAGE_USE_SSL", true)

		// Read from environment variables
		viper.AutomaticEnv()

		// Ensure the output directory exists
		ensureDir(viper.GetString("APP_OUTPUT_DIR"))

		instance = &Config{
			App: AppConfig{
				OutputDir:   viper.GetString("APP_OUTPUT_DIR"),
				CompanyID:   viper.GetInt("APP_COMPANY_ID"),
				CreatedBy:   viper.GetInt("APP_CREATED_BY"),
				LogLevel:    viper.GetString("APP_LOG_LEVEL"),
				MappingFile: viper.GetString("APP_MAPPING_FILE"),
			},
			Storage: StorageConfig{
				Endpoint:  viper.GetString("STORAGE_ENDPOINT"),
				AccessKey: viper.GetString("STORAGE_ACCESS_KEY"),
				SecretKey: viper.GetString("STORAGE_SECRET_KEY"),
				Bucket:    viper.GetString("STORAGE_BUCKET"),
				Region:    viper.GetString("STORAGE_REGION"),
				UseSSL:    viper.GetBool("STORAGE_USE_SSL"),
			},
		}
	})

	return instance
}

func ensureDir(dir string) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}
}
