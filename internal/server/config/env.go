package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded, if present, before the process environment is read.
// Variables already set in the environment win over the file.
var envFile = ".env"

// parseEnv overlays values from the environment.
//
// Recognized variables:
//
//	HTTP_ADDR, GRPC_HEALTH_ADDR, DATABASE_URL, JWT_SECRET,
//	ACCESS_TOKEN_TTL (Go duration), BCRYPT_COST, CORS_ORIGINS (comma list),
//	LOGIN_RATE_PER_MINUTE, LOGIN_BURST, S3_ROOT_USER, S3_ROOT_PASSWORD,
//	S3_BUCKET, S3_REGION, S3_BASE_ENDPOINT, UPLOAD_URL_EXPIRY, AUTO_MIGRATE,
//	LOG_LEVEL
//
// Malformed numeric, duration or boolean values panic, like the JSON and
// flag layers do.
func parseEnv(config *Config) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.HTTPAddr, "HTTP_ADDR")
	envString(&config.GRPCHealthAddr, "GRPC_HEALTH_ADDR")
	envString(&config.DatabaseDSN, "DATABASE_URL")
	envString(&config.SecretKey, "JWT_SECRET")
	envDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	envInt(&config.BcryptCost, "BCRYPT_COST")
	envList(&config.CORSOrigins, "CORS_ORIGINS")
	envInt(&config.LoginRatePerMinute, "LOGIN_RATE_PER_MINUTE")
	envInt(&config.LoginBurst, "LOGIN_BURST")
	envString(&config.S3RootUser, "S3_ROOT_USER")
	envString(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envString(&config.S3Bucket, "S3_BUCKET")
	envString(&config.S3Region, "S3_REGION")
	envString(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envDuration(&config.UploadURLExpiry, "UPLOAD_URL_EXPIRY")
	envString(&config.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv("AUTO_MIGRATE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.AutoMigrate = b
	}
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func envList(dst *[]string, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}
