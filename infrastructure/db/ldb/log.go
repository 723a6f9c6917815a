package ldb

import "github.com/mvsnet/mvsd/infrastructure/logger"

var log = logger.RegisterSubSystem("LDB")
