package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подхватывает .env, если он есть, и флаг -port поверх PORT.
// В контейнере .env обычно нет, переменные приходят из окружения.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return fmt.Errorf("set PORT environment variable: %w", err)
		}
	}
	return nil
}
