package chainstate

import "github.com/mvsnet/mvsd/infrastructure/logger"

var log = logger.RegisterSubSystem("CHST")
