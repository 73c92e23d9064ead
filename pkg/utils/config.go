package utils

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Admin   AdminConfig
	Upload  UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type StorageConfig struct {
	DataDir    string
	KVAddr     string
	KVPassword string
	KVDB       int
	KVPrefix   string
}

type AdminConfig struct {
	Username        string
	Password        string
	SessionTTLHours int
}

type UploadConfig struct {
	Dir        string
	MaxImageMB int
	MaxVideoMB int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "rental-booking")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("KV_PREFIX", "rental:")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("SESSION_TTL_HOURS", 12)
	viper.SetDefault("UPLOAD_DIR", "public")
	viper.SetDefault("MAX_IMAGE_MB", 10)
	viper.SetDefault("MAX_VIDEO_MB", 100)

	// A missing .env is fine; environment variables still apply.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Storage: StorageConfig{
			DataDir:    viper.GetString("DATA_DIR"),
			KVAddr:     viper.GetString("KV_ADDR"),
			KVPassword: viper.GetString("KV_PASSWORD"),
			KVDB:       viper.GetInt("KV_DB"),
			KVPrefix:   viper.GetString("KV_PREFIX"),
		},
		Admin: AdminConfig{
			Username:        viper.GetString("ADMIN_USERNAME"),
			Password:        viper.GetString("ADMIN_PASSWORD"),
			SessionTTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Upload: UploadConfig{
			Dir:        viper.GetString("UPLOAD_DIR"),
			MaxImageMB: viper.GetInt("MAX_IMAGE_MB"),
			MaxVideoMB: viper.GetInt("MAX_VIDEO_MB"),
		},
	}

	return config, nil
}
