// Package scenario drives the ordered validation of a deployed collectible
// contract. Phases share the contract state and run in sequence, the first
// failed expectation aborts the run.
package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/logger"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
)

// Account slots. The creator deployed the contract, the participant is the
// unprivileged minter and the recipient receives the final mintTo.
const (
	SlotCreator = iota
	SlotRecipient
	SlotParticipant
)

const (
	firstMintCount  = 2
	secondMintCount = 10
)

type Phase struct {
	Name string
	Run  func(ctx context.Context) error
}

type Runner struct {
	client   collectible.ContractClient
	params   collectible.DeployParams
	accounts []*wallet.Account
	phases   []Phase
	log      log.Logger
}

func checkFeasible(params *collectible.DeployParams) error {
	if params.Price == nil {
		return fmt.Errorf("%w: no price", ErrInfeasible)
	}
	if params.MaxTransactionCount < secondMintCount {
		return fmt.Errorf("%w: max transaction count %d is below %d", ErrInfeasible, params.MaxTransactionCount, secondMintCount)
	}
	if params.MaximumSupply <= firstMintCount+secondMintCount {
		return fmt.Errorf("%w: maximum supply %d must exceed %d", ErrInfeasible, params.MaximumSupply, firstMintCount+secondMintCount)
	}
	return nil
}

// NewRunner returns the runner checking client against the parameters it was deployed with
func NewRunner(client collectible.ContractClient, params collectible.DeployParams, accounts []*wallet.Account) (*Runner, error) {
	if len(accounts) <= SlotParticipant {
		return nil, ErrNotEnoughAccounts
	}
	if err := checkFeasible(&params); err != nil {
		return nil, err
	}
	r := &Runner{
		client:   client,
		params:   params,
		accounts: accounts,
		log:      logger.New("scenario"),
	}
	r.phases = []Phase{
		{Name: "initial-state", Run: r.verifyInitialState},
		{Name: "pausing", Run: r.verifyPausing},
		{Name: "base-uri", Run: r.verifyBaseURIUpdates},
		{Name: "minting", Run: r.verifyMinting},
		{Name: "withdrawal", Run: r.verifyWithdrawal},
	}
	return r, nil
}

// Phases returns the phase names in execution order
func (r *Runner) Phases() []string {
	names := make([]string, len(r.phases))
	for i, phase := range r.phases {
		names[i] = phase.Name
	}
	return names
}

// Run executes every phase
func (r *Runner) Run(ctx context.Context) error {
	return r.RunPhases(ctx, nil)
}

// RunPhases executes the named phases in scenario order, all of them when names is empty.
// Later phases expect the state earlier ones leave behind.
func (r *Runner) RunPhases(ctx context.Context, names []string) error {
	selected, err := r.selectPhases(names)
	if err != nil {
		return err
	}
	r.log.Info("Running scenario", "contract", r.client.Address().Hex(), "creator", r.creator().Address.Hex(), "phases", len(selected))
	for _, phase := range selected {
		start := time.Now()
		r.log.Debug("Running phase", "phase", phase.Name)
		if err := phase.Run(ctx); err != nil {
			return &PhaseError{Phase: phase.Name, Err: err}
		}
		r.log.Info("Phase passed", "phase", phase.Name, "elapsed", common.PrettyDuration(time.Since(start)))
	}
	return nil
}

func (r *Runner) selectPhases(names []string) ([]Phase, error) {
	if len(names) == 0 {
		return r.phases, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}
	selected := make([]Phase, 0, len(names))
	for _, phase := range r.phases {
		if wanted[phase.Name] {
			selected = append(selected, phase)
			delete(wanted, phase.Name)
		}
	}
	for name := range wanted {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPhase, name)
	}
	return selected, nil
}

func (r *Runner) creator() *wallet.Account {
	return r.accounts[SlotCreator]
}

func (r *Runner) recipient() *wallet.Account {
	return r.accounts[SlotRecipient]
}

func (r *Runner) participant() *wallet.Account {
	return r.accounts[SlotParticipant]
}
