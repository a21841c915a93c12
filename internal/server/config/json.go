package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/minutesfolio/internal/flagx"
	"github.com/dmitrijs2005/minutesfolio/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
// Absent fields keep the value already present in Config.
type JsonConfig struct {
	HTTPAddr                    string         `json:"http_addr"`
	GRPCHealthAddr              string         `json:"grpc_health_addr"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	BcryptCost                  int            `json:"bcrypt_cost"`
	Roles                       []string       `json:"roles"`
	DefaultRole                 string         `json:"default_role"`
	AdminRole                   string         `json:"admin_role"`
	SignatoryRoles              []string       `json:"signatory_roles"`
	CORSOrigins                 []string       `json:"cors_origins"`
	LoginRatePerMinute          int            `json:"login_rate_per_minute"`
	LoginBurst                  int            `json:"login_burst"`
	S3RootUser                  string         `json:"s3_root_user"`
	S3RootPassword              string         `json:"s3_root_password"`
	S3Bucket                    string         `json:"s3_bucket"`
	S3Region                    string         `json:"s3_region"`
	S3BaseEndpoint              string         `json:"s3_base_endpoint"`
	UploadURLExpiry             timex.Duration `json:"upload_url_expiry"`
	AutoMigrate                 *bool          `json:"auto_migrate"`
	LogLevel                    string         `json:"log_level"`
}

// parseJson loads configuration values from the file named by the -c or
// -config flag. Without the flag nothing is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCHealthAddr, c.GRPCHealthAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration.Duration)
	setInt(&config.BcryptCost, c.BcryptCost)
	setStrings(&config.Roles, c.Roles)
	setString(&config.DefaultRole, c.DefaultRole)
	setString(&config.AdminRole, c.AdminRole)
	setStrings(&config.SignatoryRoles, c.SignatoryRoles)
	setStrings(&config.CORSOrigins, c.CORSOrigins)
	setInt(&config.LoginRatePerMinute, c.LoginRatePerMinute)
	setInt(&config.LoginBurst, c.LoginBurst)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.UploadURLExpiry, c.UploadURLExpiry.Duration)
	setString(&config.LogLevel, c.LogLevel)
	if c.AutoMigrate != nil {
		config.AutoMigrate = *c.AutoMigrate
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}

func setStrings(dst *[]string, v []string) {
	if len(v) > 0 {
		*dst = v
	}
}
