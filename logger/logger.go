package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger instance. Init must be called once at
// startup (or in a package TestMain) before it is used.
var Log *logrus.Logger

func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	Log.SetLevel(logrus.InfoLevel)
}
