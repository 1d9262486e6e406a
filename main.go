package main

import (
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/relcheck/cmd"
)

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	os.Exit(cmd.Execute())
}
