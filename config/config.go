package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"hr-attendance" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret             string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	Smtp struct {
		User              string `default:"" env:"SMTP_USER"`
		Password          string `default:"" env:"SMTP_PASSWORD"`
		Host              string `default:"" env:"SMTP_HOST"`
		Port              string `default:"" env:"SMTP_PORT"`
		TLSEnabled        *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		DefaultSender     string `default:"no-reply@hr-attendance.local" env:"SMTP_DEFAULT_SENDER"`
		DefaultSenderName string `default:"HR Attendance" env:"SMTP_DEFAULT_SENDER_NAME"`
		MonitorEmail      string `default:"hr-monitor@hr-attendance.local" env:"SMTP_MONITOR_EMAIL"`
		ReportRecipient   string `default:"hr@hr-attendance.local" env:"SMTP_REPORT_RECIPIENT"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"hr-attendance" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Trial struct {
		DurationDays int `default:"14" env:"TRIAL_DURATION_DAYS"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
