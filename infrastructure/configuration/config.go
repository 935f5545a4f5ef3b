package configuration

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"vidtube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Auth        Auth        `json:"auth"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	MediaHost   MediaHost   `json:"mediaHost"`
}

type App struct {
	Port        int      `json:"port"`
	CorsOrigins []string `json:"corsOrigins"`
	TempDir     string   `json:"tempDir"`
}

// Auth holds both signing secrets and their expiries. Access and refresh
// tokens are signed with separate secrets on purpose.
type Auth struct {
	AccessTokenSecret  string `json:"accessTokenSecret"`
	RefreshTokenSecret string `json:"refreshTokenSecret"`
	AccessTokenTTLMin  int    `json:"accessTokenTTLMin"`
	RefreshTokenTTLDay int    `json:"refreshTokenTTLDay"`
	SecureCookies      bool   `json:"secureCookies"`
}

type Database struct {
	Mongo Db `json:"mongo"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	StatsTTL int    `json:"statsTTL"` // seconds
}

// MediaHost is the external provider that stores binary assets (videos,
// thumbnails, avatars).
type MediaHost struct {
	BaseURL   string `json:"baseURL"`
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
	Folder    string `json:"folder"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initAuth(&C)
	initApp(&C)
	initMediaHost(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = os.Getenv("MONGO_DB_NAME")
	}
	if C.Database.Mongo.Name == "" {
		C.Database.Mongo.Name = "vidtube"
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = os.Getenv("MONGO_HOST")
	}
	if C.Database.Mongo.Host == "" {
		C.Database.Mongo.Host = "localhost"
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = os.Getenv("MONGO_PORT")
	}
	if C.Database.Mongo.Port == "" {
		C.Database.Mongo.Port = "27017"
	}
	if C.Database.Mongo.User == "" {
		C.Database.Mongo.User = os.Getenv("MONGO_USER")
	}
	if C.Database.Mongo.Password == "" {
		C.Database.Mongo.Password = os.Getenv("MONGO_PASSWORD")
	}
}

func initAuth(C *Config) {
	// Env always wins for secrets so they never have to live in config files
	if v := os.Getenv("ACCESS_TOKEN_SECRET"); v != "" {
		C.Auth.AccessTokenSecret = v
	}
	if v := os.Getenv("REFRESH_TOKEN_SECRET"); v != "" {
		C.Auth.RefreshTokenSecret = v
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			C.Auth.AccessTokenTTLMin = n
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_TTL_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			C.Auth.RefreshTokenTTLDay = n
		}
	}
	if C.Auth.AccessTokenTTLMin == 0 {
		C.Auth.AccessTokenTTLMin = 15
	}
	if C.Auth.RefreshTokenTTLDay == 0 {
		C.Auth.RefreshTokenTTLDay = 10
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		switch v {
		case "1", "true", "TRUE", "True":
			C.Auth.SecureCookies = true
		case "0", "false", "FALSE", "False":
			C.Auth.SecureCookies = false
		}
	} else {
		C.Auth.SecureCookies = true
	}
	if C.Auth.AccessTokenSecret == "" || C.Auth.RefreshTokenSecret == "" {
		logger.GetLogger().Warn("Token secrets not set; authentication will fail. Provide ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET via environment.")
	}
}

func initApp(C *Config) {
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8000
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8000
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		C.App.CorsOrigins = origins
	}
	if len(C.App.CorsOrigins) == 0 {
		C.App.CorsOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}
	if C.App.TempDir == "" {
		C.App.TempDir = os.Getenv("UPLOAD_TEMP_DIR")
	}
	if C.App.TempDir == "" {
		C.App.TempDir = "public/temp"
	}
}

func initMediaHost(C *Config) {
	if C.MediaHost.BaseURL == "" {
		C.MediaHost.BaseURL = os.Getenv("MEDIA_HOST_URL")
	}
	if C.MediaHost.APIKey == "" {
		C.MediaHost.APIKey = os.Getenv("MEDIA_HOST_API_KEY")
	}
	if C.MediaHost.APISecret == "" {
		C.MediaHost.APISecret = os.Getenv("MEDIA_HOST_API_SECRET")
	}
	if C.MediaHost.Folder == "" {
		C.MediaHost.Folder = "vidtube"
	}
}
