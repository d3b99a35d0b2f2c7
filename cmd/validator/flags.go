package main

import (
	"gopkg.in/urfave/cli.v1"
)

var (
	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	rpcUrlFlag = cli.StringFlag{
		Name:  "rpcurl",
		Usage: "Ethereum node RPC url",
	}
	chainIdFlag = cli.Uint64Flag{
		Name:  "chainid",
		Usage: "Chain id used to sign transactions, queried from the node if not specified",
	}
	contractFlag = cli.StringFlag{
		Name:  "contract",
		Usage: "Collectible contract address or path to a deployment record",
	}
	artifactFlag = cli.StringFlag{
		Name:  "artifact",
		Usage: "Truffle build artifact of the collectible contract",
	}
	gasLimitFlag = cli.Uint64Flag{
		Name:  "gaslimit",
		Usage: "Gas limit sent with every transaction",
	}
	privateKeysFlag = cli.StringFlag{
		Name:  "privkeys",
		Usage: "Comma separated hex private keys, the first one is the creator",
	}
	mnemonicFlag = cli.StringFlag{
		Name:  "mnemonic",
		Usage: "BIP-39 mnemonic the accounts are derived from",
	}
	keystoreFlag = cli.StringFlag{
		Name:  "keystore",
		Usage: "Directory of encrypted key files",
	}
	passwordFileFlag = cli.StringFlag{
		Name:  "password",
		Usage: "Password file used to decrypt the keystore",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	phasesFlag = cli.StringFlag{
		Name:  "phases",
		Usage: "Comma separated scenario phases to run, all if not specified",
	}
	outputFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Deployment record output file",
		Value: "deployment.json",
	}
)
