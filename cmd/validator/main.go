// Command validator deploys a HazelCollectibleBase contract and runs the black box
// validation scenario against it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/console/prompt"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/verichains/collectible-validator/cmd/validator/abiutils"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/deployer"
	"github.com/verichains/collectible-validator/cmd/validator/logger"
	"github.com/verichains/collectible-validator/cmd/validator/scenario"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
	"gopkg.in/urfave/cli.v1"
)

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
	// The app that holds all commands and flags.
	app *cli.App

	errNoContract = errors.New("no contract address, set --contract or an artifact deployed on this network")
	errNoArtifact = errors.New("deployment needs a build artifact, set --artifact")
)

func init() {
	app = cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Usage = "HazelCollectibleBase deployment and validation tool"
	app.Version = fmt.Sprintf("%s - %s ", gitCommit, gitDate)
	app.Flags = []cli.Flag{
		configFileFlag,
		rpcUrlFlag,
		chainIdFlag,
		contractFlag,
		artifactFlag,
		gasLimitFlag,
		privateKeysFlag,
		mnemonicFlag,
		keystoreFlag,
		passwordFileFlag,
		verbosityFlag,
		phasesFlag,
	}
	app.Commands = []cli.Command{
		{
			Name:   "run",
			Usage:  "Run the validation scenario against a deployed contract",
			Action: runScenario,
		},
		{
			Name:   "deploy",
			Usage:  "Deploy the contract from its build artifact",
			Action: deployContract,
			Flags:  []cli.Flag{outputFlag},
		},
		{
			Name:   "status",
			Usage:  "Show the contract state",
			Action: showStatus,
		},
		{
			Name:   "accounts",
			Usage:  "Show the accounts the scenario runs with",
			Action: showAccounts,
		},
		{
			Name:   "dumpconfig",
			Usage:  "Show configuration values",
			Action: dumpConfig,
		},
	}
	app.Action = runScenario
	app.Before = func(ctx *cli.Context) error {
		logger.Setup(ctx.GlobalInt(verbosityFlag.Name))
		return nil
	}
	app.After = func(ctx *cli.Context) error {
		prompt.Stdin.Close() // Resets terminal mode.
		return nil
	}
}

// warnEmbeddedABI reports whether the session runs on the compiled in ABI instead of a build artifact
func warnEmbeddedABI(w io.Writer, artifact *abiutils.Artifact) bool {
	if artifact != nil {
		return false
	}
	color.New(color.FgYellow, color.Bold).Fprintln(w, "Warning: no --artifact given, validating against the embedded HazelCollectibleBase ABI")
	log.Warn("Event layouts are taken from the embedded ABI, events that do not match it are kept without fields")
	return true
}

// reportOutcome prints the result banner and hands the failure back to app.Run
func reportOutcome(w io.Writer, err error) error {
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(w, "Test failed!")
		return err
	}
	color.New(color.FgGreen).Fprintln(w, "Execution complete")
	return nil
}

// session is what every node facing command starts from
type session struct {
	config   *appConfig
	eth      *ethclient.Client
	chainID  *big.Int
	accounts []*wallet.Account
	abi      abi.ABI
	artifact *abiutils.Artifact
}

func openSession(ctx context.Context, cliCtx *cli.Context, accountCount int) (*session, error) {
	config, err := makeAppConfig(cliCtx)
	if err != nil {
		return nil, err
	}
	s := &session{config: config, abi: collectible.ParsedABI()}
	if config.Contract.Artifact != "" {
		if s.artifact, err = abiutils.LoadArtifact(config.Contract.Artifact); err != nil {
			return nil, err
		}
		s.abi = s.artifact.ABI
	}
	if config.Accounts.KeystoreDir != "" && config.Accounts.PasswordFile == "" {
		if config.Accounts.Passphrase, err = prompt.Stdin.PromptPassword("Keystore password: "); err != nil {
			return nil, err
		}
	}
	if s.accounts, err = wallet.Resolve(&config.Accounts, accountCount); err != nil {
		return nil, err
	}
	connector := NewRpcConnector(config.Node.RPCUrl)
	connector.SetMaxAttempt(config.Node.DialAttempts)
	if s.eth, err = connector.Connect(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to %s: %w", config.Node.RPCUrl, err)
	}
	if s.chainID, err = chainID(ctx, s.eth, config.Node.ChainID); err != nil {
		s.eth.Close()
		return nil, err
	}
	log.Info("Connected to node", "rpcUrl", config.Node.RPCUrl, "chainId", s.chainID)
	return s, nil
}

func (s *session) Close() {
	s.eth.Close()
}

func (s *session) clientConfig() collectible.Config {
	return collectible.Config{
		ChainID:        s.chainID,
		GasLimit:       s.config.Contract.GasLimit,
		ReceiptTimeout: s.config.Contract.ReceiptTimeout,
	}
}

func (s *session) contractAddress(ctx context.Context) (common.Address, error) {
	if s.config.Contract.Address != "" {
		return deployer.Address(s.config.Contract.Address)
	}
	if s.artifact == nil {
		return common.Address{}, errNoContract
	}
	networkId, err := s.eth.NetworkID(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return s.artifact.Address(networkId.Uint64())
}

// contractClient binds the configured contract after checking its code dispatches every method the client calls
func (s *session) contractClient(ctx context.Context) (*collectible.Client, error) {
	address, err := s.contractAddress(ctx)
	if err != nil {
		return nil, err
	}
	if err := collectible.Verify(ctx, s.eth, address, s.abi); err != nil {
		return nil, err
	}
	return collectible.NewClient(address, s.abi, s.eth, s.accounts[scenario.SlotCreator], s.clientConfig())
}

func runScenario(ctx *cli.Context) error {
	c, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := openSession(c, ctx, scenario.SlotParticipant+1)
	if err != nil {
		return err
	}
	defer s.Close()

	params, err := s.config.Deployment.Params()
	if err != nil {
		return err
	}
	client, err := s.contractClient(c)
	if err != nil {
		return err
	}
	runner, err := scenario.NewRunner(client, params, s.accounts)
	if err != nil {
		return err
	}
	warnEmbeddedABI(os.Stderr, s.artifact)
	return reportOutcome(os.Stderr, runner.RunPhases(c, splitList(ctx.GlobalString(phasesFlag.Name))))
}

func deployContract(ctx *cli.Context) error {
	c, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s, err := openSession(c, ctx, 1)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.artifact == nil {
		return errNoArtifact
	}
	params, err := s.config.Deployment.Params()
	if err != nil {
		return err
	}
	d, err := deployer.New(s.eth, s.clientConfig())
	if err != nil {
		return err
	}
	record, err := d.Deploy(c, s.artifact, params, s.accounts[scenario.SlotCreator])
	if err != nil {
		return err
	}
	output := ctx.String(outputFlag.Name)
	if err := deployer.WriteRecord(output, record); err != nil {
		return fmt.Errorf("could not write deployment record: %w", err)
	}
	color.Green("Deployed %s at %s, record saved to %s", record.Contract, record.Address.Hex(), output)
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
