package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string

	// Image uploads land under UploadDir and are served back under
	// PublicBaseURL + "/assets/<folder>/<file>".
	UploadDir     string
	PublicBaseURL string

	// Contact form relay (formsubmit-style endpoint) and the hidden
	// subject line sent along with every submission.
	ContactRelayURL string
	ContactSubject  string

	// Outbound contact shortcuts.
	ContactPhone    string
	ContactEmail    string
	WhatsAppNumber  string
	WhatsAppMessage string

	LogFile  string
	LogDebug bool
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=steelworks port=5432 sslmode=disable"),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		CORSOrigins:     getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		UploadDir:       getEnv("UPLOAD_DIR", "./assets"),
		PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		ContactRelayURL: getEnv("CONTACT_RELAY_URL", "https://formsubmit.co/info@sumithindustries.com"),
		ContactSubject:  getEnv("CONTACT_SUBJECT", "New Contact Form Submission from Sumith Industries Website"),
		ContactPhone:    getEnv("CONTACT_PHONE", "+919442021149"),
		ContactEmail:    getEnv("CONTACT_EMAIL", "info@sumithindustries.com"),
		WhatsAppNumber:  getEnv("WHATSAPP_NUMBER", "919442021149"),
		WhatsAppMessage: getEnv("WHATSAPP_MESSAGE", "Hello! I'm interested in your steel products. Please share more details."),
		LogFile:         getEnv("LOG_FILE", ""),
		LogDebug:        getEnvBool("LOG_DEBUG", false),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set. It is mandatory for production.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS is using the default value, set your own domain for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
