package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mvsnet/mvsd/infrastructure/logger"
)

const (
	defaultDebugLevel     = "warn"
	defaultLogFilename    = "mvstx.log"
	defaultErrLogFilename = "mvstx_err.log"
)

var log = logger.RegisterSubSystem("MVTX")

func initLog(logDir string, debugLevel string) error {
	if logDir != "" {
		logger.InitLog(filepath.Join(logDir, defaultLogFilename), filepath.Join(logDir, defaultErrLogFilename))
	} else {
		logger.InitLogStderr(logger.LevelTrace)
	}
	return logger.ParseAndSetLogLevels(debugLevel)
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	logger.BackendLog.Close()
	os.Exit(1)
}
