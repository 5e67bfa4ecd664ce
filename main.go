package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"

	"github.com/groovekit/groovekit/internal/config"
	"github.com/groovekit/groovekit/internal/harmony"
	"github.com/groovekit/groovekit/internal/models"
	"github.com/groovekit/groovekit/internal/pipeline"
	"github.com/groovekit/groovekit/internal/theory"
)

const (
	sentryFlushTimeout    = 2 * time.Second
	environmentProduction = "production"
)

// releaseVersion is set via ldflags during build
var releaseVersion = "dev"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize Sentry
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
			Release:     "groovekit@" + releaseVersion,
			Debug:       cfg.Environment != environmentProduction,
		}); err != nil {
			log.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer sentry.Flush(sentryFlushTimeout)
		}
	}

	mode, err := theory.ParseMode(cfg.DefaultMode)
	if err != nil {
		log.Fatal("Invalid mode: ", err)
	}
	bars, err := strconv.Atoi(cfg.DefaultBars)
	if err != nil || bars <= 0 {
		log.Fatalf("Invalid bar count %q", cfg.DefaultBars)
	}

	orch := pipeline.New()
	arrangement, err := orch.Arrange(pipeline.Request{
		Key:      models.Key{Root: cfg.DefaultKey, Mode: mode, Confidence: 1.0},
		Genre:    cfg.DefaultGenre,
		Mood:     harmony.MoodNeutral,
		Bars:     bars,
		Energy:   6,
		BPM:      122,
		Humanize: true,
		Slides:   true,
		Seed:     time.Now().UnixNano(),
	})
	if err != nil {
		sentry.CaptureException(err)
		log.Fatal("Failed to generate arrangement: ", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(arrangement); err != nil {
		log.Fatal("Failed to encode arrangement: ", err)
	}
}
