package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/jessevdk/go-flags"
	"github.com/mvsnet/mvsd/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	encodeSubCmd    = "encode"
	decodeSubCmd    = "decode"
	setHeightSubCmd = "set-height"
)

var defaultAppDir = btcutil.AppDataDir("mvstx", false)

type appFlags struct {
	LogDir     string `long:"logdir" description:"Directory to write rotated log files to, logs go to stderr only if empty"`
	DebugLevel string `long:"debuglevel" short:"d" default:"warn" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	config.NetworkFlags
}

type configFlags struct {
	appFlags
}

type encodeConfig struct {
	ScriptVersion *uint8   `long:"script-version" short:"s" description:"The pay-to-script-hash address version byte, defaults to the network's"`
	Version       *uint32  `long:"version" short:"v" description:"The transaction version, defaults to the network's"`
	LockTime      uint32   `long:"lock-time" short:"l" description:"The transaction lock time"`
	Inputs        []string `long:"input" short:"i" description:"A transaction input encoded as TXHASH:INDEX[:SEQUENCE]. May be repeated"`
	Outputs       []string `long:"output" short:"o" description:"A transaction output encoded as TARGET:SATOSHI[:SEED]. TARGET is an address (including stealth or pay-to-script-hash) or a hex script. SEED is hex and required for stealth outputs. May be repeated"`
	Deposit       string   `long:"deposit" description:"A deposit output encoded as TARGET:SATOSHI, appended after all outputs"`
	Period        uint32   `long:"period" default:"7" description:"The deposit period in days {7, 30, 90, 182, 365}"`
	Transfers     []string `long:"transfer" description:"An asset transfer attached to an output, encoded as INDEX:SYMBOL:SENDER:RECIPIENT:QUANTITY. May be repeated"`
	Messages      []string `long:"message" description:"A message attached to an output, encoded as INDEX:TEXT. May be repeated"`
	Height        *uint64  `long:"height" description:"The current chain height used by deposit outputs, defaults to the height stored by set-height"`
	DataDir       string   `long:"datadir" description:"Directory of the chain state database"`
	appFlags
}

type decodeConfig struct {
	Transaction string `long:"transaction" short:"t" description:"The transaction to decode (encoded in hex)" required:"true"`
	appFlags
}

type setHeightConfig struct {
	Height  uint64 `long:"height" description:"The current chain tip height" required:"true"`
	DataDir string `long:"datadir" description:"Directory of the chain state database"`
	appFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	encodeConf := &encodeConfig{}
	parser.AddCommand(encodeSubCmd, "Encode an unsigned transaction",
		"Builds an unsigned transaction from inputs and outputs and prints it encoded in hex", encodeConf)

	decodeConf := &decodeConfig{}
	parser.AddCommand(decodeSubCmd, "Decode a transaction",
		"Prints the inputs, outputs, scripts and attachments of a hex encoded transaction", decodeConf)

	setHeightConf := &setHeightConfig{}
	parser.AddCommand(setHeightSubCmd, "Record the chain tip height",
		"Records the chain tip height that deposit outputs are locked relative to", setHeightConf)

	_, err := parser.Parse()

	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	var activeFlags *appFlags
	switch parser.Command.Active.Name {
	case encodeSubCmd:
		activeFlags = &encodeConf.appFlags
		config = encodeConf
	case decodeSubCmd:
		activeFlags = &decodeConf.appFlags
		config = decodeConf
	case setHeightSubCmd:
		activeFlags = &setHeightConf.appFlags
		config = setHeightConf
	}

	combineAppFlags(activeFlags, &cfg.appFlags)
	err = activeFlags.ResolveNetwork(parser)
	if err != nil {
		printErrorAndExit(err)
	}
	err = initLog(activeFlags.LogDir, activeFlags.DebugLevel)
	if err != nil {
		printErrorAndExit(err)
	}

	return parser.Command.Active.Name, config
}

func combineAppFlags(dst, src *appFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Devnet = dst.Devnet || src.Devnet
	if dst.OverrideParamsFile == "" {
		dst.OverrideParamsFile = src.OverrideParamsFile
	}
	if dst.LogDir == "" {
		dst.LogDir = src.LogDir
	}
	if src.DebugLevel != "" && src.DebugLevel != defaultDebugLevel {
		dst.DebugLevel = src.DebugLevel
	}
}

// chainStateDir returns the chain state database directory of the active
// network.
func chainStateDir(dataDir string, networkFlags *config.NetworkFlags) string {
	if dataDir == "" {
		dataDir = defaultAppDir
	}
	return filepath.Join(dataDir, networkFlags.NetParams().Name, "chainstate")
}
