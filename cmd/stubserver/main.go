// Command stubserver runs the local stand-in for the granaboard backend.
// It serves the REST contract the client consumes from an sqlite database,
// optionally seeded with demo data.
package main

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/granaboard/client-go/internal/stub"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn, ok := os.LookupEnv("STUB_DSN")
	if !ok {
		dsn = "stub.db?_pragma=foreign_keys(1)"
	}

	db, err := stub.Connect(dsn)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := stub.Migrate(db); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if _, ok := os.LookupEnv("SEED_DEMO_DATA"); ok {
		if err := stub.Seed(db); err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	r := stub.NewServer(db).Router()

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
