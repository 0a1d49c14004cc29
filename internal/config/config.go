package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// External AI microservices (vector search, OCR, personality, emotion, questions)
	MLBackendURL string
	MLTimeout    time.Duration

	// Object store
	StoreEndpoint  string
	StoreBucket    string
	StorePublicURL string

	// Deep links embedded in notifications
	PublicBaseURL string

	// Matching
	MatchNotifyLimit     int
	RecommendResultLimit int

	// Learning. Caps and thresholds vary between deployments, so they are
	// configuration rather than constants.
	QuizTopicAttemptLimit  int
	QuizGlobalAttemptLimit int
	LearningSpeedMin       int
	LearningMediumMin      int

	// Server
	Port        string
	CORSOrigins string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "jobvista_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "168h"), 168*time.Hour),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "720h"), 720*time.Hour),

		MLBackendURL: getEnv("ML_BACKEND_URL", "http://localhost:8000/recruitment-project"),
		MLTimeout:    parseDuration(getEnv("ML_TIMEOUT", "60s"), 60*time.Second),

		StoreEndpoint:  getEnv("STORE_ENDPOINT", ""),
		StoreBucket:    getEnv("STORE_BUCKET", "jobvista-public"),
		StorePublicURL: getEnv("STORE_PUBLIC_URL", ""),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		MatchNotifyLimit:     parseInt(getEnv("MATCH_NOTIFY_LIMIT", "50"), 50),
		RecommendResultLimit: parseInt(getEnv("RECOMMEND_RESULT_LIMIT", "10"), 10),

		QuizTopicAttemptLimit:  parseInt(getEnv("QUIZ_TOPIC_ATTEMPT_LIMIT", "3"), 3),
		QuizGlobalAttemptLimit: parseInt(getEnv("QUIZ_GLOBAL_ATTEMPT_LIMIT", "20"), 20),
		LearningSpeedMin:       parseInt(getEnv("LEARNING_SPEED_MIN", "80"), 80),
		LearningMediumMin:      parseInt(getEnv("LEARNING_MEDIUM_MIN", "40"), 40),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
