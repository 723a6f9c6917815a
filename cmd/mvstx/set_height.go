package main

import (
	"github.com/mvsnet/mvsd/domain/chainstate"
)

func setHeight(conf *setHeightConfig) error {
	store, err := chainstate.Open(chainStateDir(conf.DataDir, &conf.NetworkFlags), conf.NetParams().TargetTimePerBlock)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.SetTipHeight(conf.Height)
}
