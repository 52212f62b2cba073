// Package logger configures the process-wide logrus instance with
// optional rotating file output.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared instance. Packages grab component-scoped entries
// via WithComponent instead of logging through it directly.
var Logger = logrus.New()

var initOnce sync.Once

// Config controls level and file output. An empty OutputFile logs to
// stderr only.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string
	MaxSize    int // MB per file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Init applies cfg to the shared logger. Safe to call once at startup;
// subsequent calls are no-ops.
func Init(cfg Config) {
	initOnce.Do(func() {
		level, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			level = logrus.InfoLevel
		}
		Logger.SetLevel(level)
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})

		var out io.Writer = os.Stderr
		if cfg.OutputFile != "" {
			rotated := &lumberjack.Logger{
				Filename:   cfg.OutputFile,
				MaxSize:    orDefault(cfg.MaxSize, 50),
				MaxBackups: orDefault(cfg.MaxBackups, 5),
				MaxAge:     orDefault(cfg.MaxAge, 14),
				Compress:   cfg.Compress,
			}
			out = io.MultiWriter(os.Stderr, rotated)
		}
		Logger.SetOutput(out)
	})
}

// WithComponent returns an entry tagged for one subsystem.
func WithComponent(name string) *logrus.Entry {
	return Logger.WithField("component", name)
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
