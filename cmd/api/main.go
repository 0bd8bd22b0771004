package main

import (
	"expvar"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"voltmart/internal/cart"
	"voltmart/internal/catalog"
	"voltmart/internal/ratelimiter"
	"voltmart/internal/wishlist"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "0.3.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	delay := 1500 * time.Millisecond
	if val, exists := os.LookupEnv("NEGOTIATION_DELAY_MS"); exists {
		if ms, err := strconv.Atoi(val); err == nil && ms >= 0 {
			delay = time.Duration(ms) * time.Millisecond
		} else {
			fmt.Println("Invalid NEGOTIATION_DELAY_MS, defaulting to", delay)
		}
	}

	cfg := config{
		addr:        os.Getenv("ADDR"),
		env:         os.Getenv("ENV"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		wishlistDB:  os.Getenv("WISHLIST_DB_PATH"),
		negotiation: negotiationConfig{
			processingDelay: delay,
		},
		rateLimiter: LoadRateLimiterConfig(),
	}
	if cfg.addr == "" {
		cfg.addr = ":8080"
	}
	if cfg.wishlistDB == "" {
		cfg.wishlistDB = "./data/wishlist"
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Catalog (static mock inventory)
	cat := catalog.New(catalog.Seed())
	logger.Infow("catalog loaded", "products", cat.Len())

	// Wishlist / comparison persistence
	saved, err := wishlist.Open(cfg.wishlistDB)
	if err != nil {
		logger.Fatal(err)
	}
	defer saved.Close()
	logger.Info("wishlist store opened")

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		catalog:     cat,
		carts:       cart.NewManager(),
		saved:       saved,
		logger:      logger,
		rateLimiter: rateLimiter,
	}

	// Metrics collected at http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("cart_sessions", expvar.Func(func() any {
		return app.carts.Sessions()
	}))

	mux := app.mount()
	logger.Fatal(app.run(mux))
}
