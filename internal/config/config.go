package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Data   DataConfig
}

type ServerConfig struct {
	Host string
	Port int
}

// DataConfig locates the data folder holding the lookups, seating plan,
// flight and boarding card files.
type DataConfig struct {
	Dir string
}

func New() (*Config, error) {
	const op = "config.New"

	_ = godotenv.Load()

	serverHost := os.Getenv("SERVER_HOST")
	if serverHost == "" {
		serverHost = "localhost"
	}

	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080"
	}

	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid SERVER_PORT: %w", op, err)
	}

	dataDir := os.Getenv("AEROBOOK_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	return &Config{
		Server: ServerConfig{
			Host: serverHost,
			Port: serverPort,
		},
		Data: DataConfig{
			Dir: dataDir,
		},
	}, nil
}
