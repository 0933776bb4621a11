package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port              string
	LogLevel          string
	OperatorWorkers   int
	OperatorQueueSize int
	GridSixWeeks      bool
}

// ProcessEnvironmentVariables builds the config from defaults, a .env file
// in the working directory if one exists, and the process environment.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	// A single operator worker keeps every store mutation on one goroutine.
	env := Config{
		Port:              "9446",
		LogLevel:          "info",
		OperatorWorkers:   1,
		OperatorQueueSize: 1000,
		GridSixWeeks:      false,
	}

	envPort := os.Getenv("BUDGET_PORT")
	envLogLevel := os.Getenv("BUDGET_LOG_LEVEL")
	envOperatorWorkers := os.Getenv("BUDGET_OPERATOR_WORKERS")
	envOperatorQueueSize := os.Getenv("BUDGET_OPERATOR_QUEUE_SIZE")
	envGridSixWeeks := os.Getenv("BUDGET_GRID_SIX_WEEKS")

	if len(envPort) != 0 {
		port, err := strconv.Atoi(envPort)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid BUDGET_PORT %q", envPort)
		}
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		if _, err := logrus.ParseLevel(envLogLevel); err != nil {
			return nil, fmt.Errorf("invalid BUDGET_LOG_LEVEL: %w", err)
		}
		env.LogLevel = envLogLevel
	}

	if len(envOperatorWorkers) != 0 {
		workers, err := strconv.Atoi(envOperatorWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("invalid BUDGET_OPERATOR_WORKERS %q", envOperatorWorkers)
		}
		env.OperatorWorkers = workers
	}

	if len(envOperatorQueueSize) != 0 {
		size, err := strconv.Atoi(envOperatorQueueSize)
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid BUDGET_OPERATOR_QUEUE_SIZE %q", envOperatorQueueSize)
		}
		env.OperatorQueueSize = size
	}

	if len(envGridSixWeeks) != 0 {
		sixWeeks, err := strconv.ParseBool(envGridSixWeeks)
		if err != nil {
			return nil, fmt.Errorf("invalid BUDGET_GRID_SIX_WEEKS %q", envGridSixWeeks)
		}
		env.GridSixWeeks = sixWeeks
	}

	return &env, nil
}
