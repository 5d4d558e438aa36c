package api

import (
	"sync"
	"time"

	"github.com/Dinhh-Chan/aic-judges/logging"
	"github.com/spf13/viper"
)

type Config struct {
	ServerConfig
	BackendConfig
	SessionConfig
	AdminConfig
}

type ServerConfig struct {
	Port     int
	Local    bool
	LogLevel string
}

type BackendConfig struct {
	BaseURL       string
	AuthBaseURL   string
	StaticBaseURL string
	Timeout       time.Duration
	TeamLimit     int
}

type SessionConfig struct {
	Store         string
	Secret        string
	CookieName    string
	SecureCookie  bool
	TableName     string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

type AdminConfig struct {
	Token string
}

const (
	SessionStoreMemory = "memory"
	SessionStoreDynamo = "dynamodb"
	SessionStoreRedis  = "redis"
)

var settingsOnce sync.Once

func ReadConfig() *Config {
	baseURL := getString("backend.baseUrl")

	var conf = &Config{
		ServerConfig: ServerConfig{
			Port:     getIntOrDefault("server.port", 8080),
			Local:    getStringOrDefault("app_env", "") == "local",
			LogLevel: getStringOrDefault("server.logLevel", "debug"),
		},
		BackendConfig: BackendConfig{
			BaseURL:       baseURL,
			AuthBaseURL:   getStringOrDefault("backend.authBaseUrl", baseURL),
			StaticBaseURL: getStringOrDefault("backend.staticBaseUrl", ""),
			Timeout:       getDurationOrDefault("backend.timeout", 10*time.Second),
			TeamLimit:     getIntOrDefault("backend.teamLimit", 100),
		},
		SessionConfig: SessionConfig{
			Store:         getStringOrDefault("session.store", SessionStoreMemory),
			Secret:        getString("session.secret"),
			CookieName:    getStringOrDefault("session.cookieName", "aic_session"),
			SecureCookie:  getBoolOrDefault("session.secureCookie", false),
			TableName:     getStringOrDefault("session.tableName", "JudgeSessions"),
			RedisAddr:     getStringOrDefault("session.redisAddr", "localhost:6379"),
			RedisPassword: getStringOrDefault("session.redisPassword", ""),
			RedisDB:       getIntOrDefault("session.redisDb", 0),
			TTL:           getDurationOrDefault("session.ttl", 0),
		},
		AdminConfig: AdminConfig{
			Token: getStringOrDefault("admin.token", ""),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getString(name string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Fatalf("required setting '%s' is missing", name)
	return ""
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getBoolOrDefault(name string, def bool) bool {
	if viper.IsSet(name) {
		v := viper.GetBool(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getDurationOrDefault(name string, def time.Duration) time.Duration {
	if viper.IsSet(name) {
		v := viper.GetDuration(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
