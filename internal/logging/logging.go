package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Conf selects the log level and output format.
type Conf struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" (default) or "json"
}

// Setup configures the global zerolog logger to write to stderr.
func Setup(conf Conf) error {
	return SetupWriter(conf, os.Stderr)
}

// SetupWriter configures the global logger to write to out.
func SetupWriter(conf Conf, out io.Writer) error {
	level := zerolog.InfoLevel
	if conf.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(conf.Level))
		if err != nil {
			return err
		}
		level = lvl
	}
	zerolog.SetGlobalLevel(level)

	if strings.EqualFold(conf.Format, "json") {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return nil
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	return nil
}
