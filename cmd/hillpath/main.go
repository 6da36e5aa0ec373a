// Command hillpath reads an elevation grid and prints two answers: the
// fewest steps from S to E, and the fewest steps to E from any lowest cell.
//
// Usage:
//
//	hillpath [flags] <input-file>
//
// Every flag can also be set through a HILLPATH_* environment variable or a
// .env file in the working directory.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := newLogger(os.Stderr)

	// An absent .env is normal; anything else is worth a warning.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.WithError(err).Warn("could not load .env file")
	}

	if err := newCommand(logger).Run(context.Background(), os.Args); err != nil {
		logger.WithError(err).Error("hillpath failed")
		os.Exit(1)
	}
}

// newLogger returns the text logger shared by the command and the searches.
func newLogger(out *os.File) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}
