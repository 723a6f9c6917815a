package main

import (
	"github.com/mvsnet/mvsd/infrastructure/logger"
	"github.com/pkg/errors"
)

func main() {
	subCmd, config := parseCommandLine()

	var err error
	switch subCmd {
	case encodeSubCmd:
		err = encode(config.(*encodeConfig))
	case decodeSubCmd:
		err = decode(config.(*decodeConfig))
	case setHeightSubCmd:
		err = setHeight(config.(*setHeightConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
	logger.BackendLog.Close()
}
