package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	PostgresDSN string
	RedisAddr   string
	MongoURI    string
	MongoDB     string
	SecretKey   string
	LogLevel    string
	ListenAddr  string
	Seed        bool
}

var defaults = map[string]string{
	"POSTGRES_DSN": "postgresql://localhost/forum?sslmode=disable",
	"REDIS_ADDR":   "redis://localhost:6379/0",
	"MONGODB_URI":  "mongodb://localhost:27017",
	"MONGODB_DB":   "forum",
	"SECRET_KEY":   "",
	"LOG_LEVEL":    "info",
	"LISTEN_ADDR":  ":8080",
	"SEED":         "false",
}

// Load reads the given dotenv files (".env" when none given). A missing file
// is not an error; process environment wins over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	env := map[string]string{}
	for k, v := range defaults {
		env[k] = v
	}
	for _, f := range files {
		fileEnv, err := godotenv.Read(f)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for k, v := range fileEnv {
			env[k] = v
		}
	}
	for k := range env {
		if v, ok := os.LookupEnv(k); ok {
			env[k] = v
		}
	}

	seed, _ := strconv.ParseBool(env["SEED"])
	return &Config{
		PostgresDSN: env["POSTGRES_DSN"],
		RedisAddr:   env["REDIS_ADDR"],
		MongoURI:    env["MONGODB_URI"],
		MongoDB:     env["MONGODB_DB"],
		SecretKey:   env["SECRET_KEY"],
		LogLevel:    env["LOG_LEVEL"],
		ListenAddr:  env["LISTEN_ADDR"],
		Seed:        seed,
	}, nil
}
