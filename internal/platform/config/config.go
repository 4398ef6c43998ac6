package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Server captures deployment-level configuration. Questionnaire behavior is
// fixed in code; only where to listen and where the CSV files live are
// configurable.
type Server struct {
	Addr    string
	DataDir string
}

// FromEnv builds a Server config from environment variables so main stays
// lean. A .env file in the working directory is honored when present.
func FromEnv() Server {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	addr := os.Getenv("UXSTUDY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dataDir := os.Getenv("UXSTUDY_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return Server{
		Addr:    addr,
		DataDir: dataDir,
	}
}
