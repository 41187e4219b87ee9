package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Firebase publishes the signing keys of its ID tokens here.
const firebaseJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	LogDir      string // optional; logs are also written to a timestamped file here
	// Document store
	MongoURI         string
	DatabaseName     string
	CollectionPrefix string
	// Identity provider
	AuthProvider      string // "jwks" or "oidc"
	FirebaseProjectID string
	AuthJWKSURL       string
	AuthIssuer        string
	AuthAudience      string
	// Mail relay
	MailDriver         string // "ses" or "log"
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	MailFrom           string
	ContactRecipient   string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	projectID := getEnv("FIREBASE_PROJECT_ID", "")

	// Firebase defaults; explicit AUTH_* variables win
	jwksURL, issuer, audience := "", "", ""
	if projectID != "" {
		jwksURL = firebaseJWKSURL
		issuer = "https://securetoken.google.com/" + projectID
		audience = projectID
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),
		LogDir:      getEnv("LOG_DIR", ""),
		// Document store
		MongoURI:         mongoURI(),
		DatabaseName:     getEnv("DB_NAME", "foodSharingDB"),
		CollectionPrefix: getCollectionPrefix(env),
		// Identity provider
		AuthProvider:      getEnv("AUTH_PROVIDER", "jwks"),
		FirebaseProjectID: projectID,
		AuthJWKSURL:       getEnv("AUTH_JWKS_URL", jwksURL),
		AuthIssuer:        getEnv("AUTH_ISSUER", issuer),
		AuthAudience:      getEnv("AUTH_AUDIENCE", audience),
		// Mail relay
		MailDriver:         getEnv("MAIL_DRIVER", getDefaultMailDriver(env)),
		AWSRegion:          getEnv("AWS_REGION", ""),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		MailFrom:           getEnv("MAIL_FROM", ""),
		ContactRecipient:   getEnv("CONTACT_RECIPIENT", ""),
	}
}

// Validate reports every missing or malformed setting at once.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Match(regexp.MustCompile(`^\d{1,5}$`))),
		validation.Field(&c.Environment, validation.Required, validation.In("dev", "test", "prod")),
		validation.Field(&c.MongoURI, validation.Required),
		validation.Field(&c.DatabaseName, validation.Required),
		validation.Field(&c.AuthProvider, validation.Required, validation.In("jwks", "oidc")),
		validation.Field(&c.AuthJWKSURL, validation.When(c.AuthProvider == "jwks", validation.Required, is.URL)),
		validation.Field(&c.AuthIssuer, validation.When(c.AuthProvider == "oidc", validation.Required, is.URL)),
		validation.Field(&c.AuthAudience, validation.When(c.AuthProvider == "oidc", validation.Required)),
		validation.Field(&c.MailDriver, validation.Required, validation.In("ses", "log")),
		validation.Field(&c.AWSRegion, validation.When(c.MailDriver == "ses", validation.Required)),
		validation.Field(&c.MailFrom, validation.When(c.MailDriver == "ses", validation.Required), is.Email),
		validation.Field(&c.ContactRecipient, validation.Required, is.Email),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// mongoURI prefers MONGODB_URI and otherwise builds an Atlas SRV URI from
// DB_USER / DB_PASS / DB_CLUSTER.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}

	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASS")
	if user == "" || pass == "" {
		return "mongodb://localhost:27017"
	}

	cluster := getEnv("DB_CLUSTER", "cluster0.567kdcn.mongodb.net")
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(user), url.QueryEscape(pass), cluster)
}

// getDefaultMailDriver sends real mail only in production by default
func getDefaultMailDriver(env string) string {
	if env == "prod" {
		return "ses"
	}
	return "log"
}

// getCollectionPrefix returns the collection prefix based on environment
func getCollectionPrefix(env string) string {
	// Allow manual override via COLLECTION_PREFIX env var
	if prefix, ok := os.LookupEnv("COLLECTION_PREFIX"); ok {
		return prefix
	}

	// Production keeps the bare collection names
	switch env {
	case "test":
		return "test_"
	case "dev":
		return "dev_"
	default:
		return ""
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
