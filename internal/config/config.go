package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration runtime, construite une seule fois
// dans main puis injectée dans les composants (pas de globales)
type Config struct {
	Env  string
	Port string

	ScyllaHosts    []string
	ScyllaKeyspace string
	ScyllaUsername string
	ScyllaPassword string

	RedisHost     string
	RedisPassword string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	BcryptCost int

	AllowedOrigins []string
}

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// FromEnv lit la configuration depuis l'environnement
func FromEnv() Config {
	cfg := Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		ScyllaHosts:    strings.Split(getEnv("SCYLLA_HOSTS", "127.0.0.1"), ","),
		ScyllaKeyspace: getEnv("SCYLLA_KEYSPACE", "boutique"),
		ScyllaUsername: os.Getenv("SCYLLA_USERNAME"),
		ScyllaPassword: os.Getenv("SCYLLA_PASSWORD"),

		RedisHost:     getEnv("REDIS_HOST", "127.0.0.1:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		ElasticURL:      os.Getenv("ELASTIC_URL"),
		ElasticUser:     os.Getenv("ELASTIC_USER"),
		ElasticPassword: os.Getenv("ELASTIC_PASSWORD"),

		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "boutique-images"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",

		BcryptCost: getEnvInt("BCRYPT_COST", 10),
	}

	// Origines CORS autorisées uniquement hors production
	if cfg.Env == "development" || cfg.Env == "staging" {
		cfg.AllowedOrigins = []string{"http://localhost:8080", "http://0.0.0.0:8080"}
	}

	return cfg
}

// IsDevelopment indique si on tourne en environnement de développement
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("⚠️ Valeur invalide pour %s (%q), fallback sur %d", key, v, fallback)
		return fallback
	}
	return n
}
