package scenario

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
)

const (
	pauseReason   = "I want to pause the token"
	unpauseReason = "I want to unpause the token"
	newBaseURI    = "newBaseUri"
	baseURIReason = "I want to update the base URI"
)

func (r *Runner) verifyInitialState(ctx context.Context) error {
	c := r.client
	p := r.params
	checks := []struct {
		expected interface{}
		message  string
		read     func() (interface{}, error)
	}{
		{big.NewInt(0), "Invalid initial total supply", func() (interface{}, error) { return c.TotalSupply(ctx) }},
		{new(big.Int).SetUint64(p.MaximumSupply), "Invalid maximum supply", func() (interface{}, error) { return c.MaximumSupply(ctx) }},
		{new(big.Int).SetUint64(p.MaxTransactionCount), "Invalid maximum transaction count", func() (interface{}, error) { return c.MaximumTransactionCount(ctx) }},
		{p.Price, "Invalid price", func() (interface{}, error) { return c.Price(ctx, 1) }},
		{new(big.Int).Mul(p.Price, big.NewInt(2)), "Invalid price multiplication", func() (interface{}, error) { return c.Price(ctx, 2) }},
		{true, "Token should be paused", func() (interface{}, error) { return c.Paused(ctx) }},
		{p.BaseURI, "Invalid initial baseURI", func() (interface{}, error) { return c.BaseURI(ctx) }},
		{r.creator().Address, "Invalid creator address", func() (interface{}, error) { return c.Creator(ctx) }},
		{p.Developer, "Invalid dev address", func() (interface{}, error) { return c.Developer(ctx) }},
		{new(big.Int).SetUint64(p.DevSaleCommission), "Invalid dev sale commission", func() (interface{}, error) { return c.DevSaleCommission(ctx) }},
		{p.IsPrivateMinting, "Invalid private minting flag", func() (interface{}, error) { return c.IsPrivateMinting(ctx) }},
		{p.CanCreatorMintForFree, "Invalid creator free mint flag", func() (interface{}, error) { return c.CanCreatorMintForFree(ctx) }},
		{[]*big.Int{}, "Creator should have no tokens", func() (interface{}, error) { return c.TokensOwnedBy(ctx, r.creator().Address) }},
	}
	for _, check := range checks {
		if err := expect(check.expected, check.message, check.read); err != nil {
			return err
		}
	}
	return nil
}

// setPaused toggles the pause state as creator and checks the state and the event
func (r *Runner) setPaused(ctx context.Context, paused bool, message string) error {
	var (
		reason    = unpauseReason
		eventName = collectible.EventTokenUnpaused
		stateMsg  = "Token should not be paused after creator unpause"
		eventMsg  = "No event found when token was unpaused"
	)
	if paused {
		reason = pauseReason
		eventName = collectible.EventTokenPaused
		stateMsg = "Token should be paused after creator pause"
		eventMsg = "No event found when token was paused"
	}
	tx, err := assertAccepted(r.client.Pause(ctx, paused, reason, nil), message)
	if err != nil {
		return err
	}
	if err := expect(paused, stateMsg, func() (interface{}, error) { return r.client.Paused(ctx) }); err != nil {
		return err
	}
	return assertEventEmitted(ctx, r.client, tx.TxHash, eventName, eventMsg)
}

func (r *Runner) verifyPausing(ctx context.Context) error {
	outsider := r.participant()
	if err := assertRejected(r.client.Pause(ctx, false, unpauseReason, outsider), ReasonNotOwner, "Pause should be available to creator only"); err != nil {
		return err
	}
	if err := assertRejected(r.client.Pause(ctx, true, pauseReason, outsider), ReasonNotOwner, "Pause should be available to creator only"); err != nil {
		return err
	}
	for _, paused := range []bool{false, true, false} {
		if err := r.setPaused(ctx, paused, "Pause not available to creator"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) verifyBaseURIUpdates(ctx context.Context) error {
	err := assertRejected(r.client.SetBaseURI(ctx, newBaseURI, baseURIReason, r.participant()), ReasonNotOwner, "BaseURI should be updated by creator only")
	if err != nil {
		return err
	}
	tx, err := assertAccepted(r.client.SetBaseURI(ctx, newBaseURI, baseURIReason, nil), "BaseURI should be updated by creator only")
	if err != nil {
		return err
	}
	if err := expect(newBaseURI, "Base uri should be equal to 'newBaseUri' after update", func() (interface{}, error) { return r.client.BaseURI(ctx) }); err != nil {
		return err
	}
	return assertEventEmitted(ctx, r.client, tx.TxHash, collectible.EventBaseURIChanged, "No event found when baseURI was changed")
}

func (r *Runner) verifyMinting(ctx context.Context) error {
	creator, err := r.client.Creator(ctx)
	if err != nil {
		return err
	}
	price, err := r.client.Price(ctx, firstMintCount)
	if err != nil {
		return err
	}
	freeMint, err := r.client.CanCreatorMintForFree(ctx)
	if err != nil {
		return err
	}
	privateMint, err := r.client.IsPrivateMinting(ctx)
	if err != nil {
		return err
	}

	var firstMint *collectible.Accepted
	if freeMint {
		if firstMint, err = assertAccepted(r.client.Mint(ctx, firstMintCount, new(big.Int), nil), "Creator cannot mint first tokens for free"); err != nil {
			return err
		}
	} else {
		if firstMint, err = assertAccepted(r.client.Mint(ctx, firstMintCount, price, nil), "Creator cannot mint first tokens"); err != nil {
			return err
		}
		if price.Sign() > 0 {
			underpaid := new(big.Int).Sub(price, common.Big1)
			if err := assertRejected(r.client.Mint(ctx, firstMintCount, underpaid, nil), ReasonUnderpaid, "Creator minted with value less than price"); err != nil {
				return err
			}
		}
	}
	if err := assertEventEmitted(ctx, r.client, firstMint.TxHash, collectible.EventTokenCreated, "No event found when first token was minted"); err != nil {
		return err
	}
	if err := r.expectTotalSupply(ctx, firstMintCount, "Total supply not equal to first mint count"); err != nil {
		return err
	}
	if err := expect(tokenRange(0, firstMintCount), "Creator should own the first minted tokens", func() (interface{}, error) { return r.client.TokensOwnedBy(ctx, creator) }); err != nil {
		return err
	}

	// a paused private sale refuses outsiders for not being whitelisted first
	if err := r.setPaused(ctx, true, "Pause not available to creator"); err != nil {
		return err
	}
	pausedReason, pausedMsg := ReasonPaused, "Non creator address minted while token paused"
	if privateMint {
		pausedReason, pausedMsg = ReasonPrivateSale, "Non whitelisted address minted on private minting"
	}
	if err := assertRejected(r.client.Mint(ctx, firstMintCount, price, r.participant()), pausedReason, pausedMsg); err != nil {
		return err
	}
	if err := r.setPaused(ctx, false, "Pause not available to creator"); err != nil {
		return err
	}

	overLimit := r.params.MaxTransactionCount + 1
	if price, err = r.client.Price(ctx, overLimit); err != nil {
		return err
	}
	if err := assertRejected(r.client.Mint(ctx, overLimit, price, r.participant()), ReasonTxLimit, "Minted count exceeds maximum transaction count"); err != nil {
		return err
	}

	minter, message := r.participant(), "Non whitelist account cannot mint 10 tokens"
	if privateMint {
		minter, message = r.creator(), "Creator account cannot mint 10 tokens"
	}
	if err := r.mintAndCheck(ctx, secondMintCount, minter.Address, message, func(value *big.Int) collectible.Outcome {
		return r.client.Mint(ctx, secondMintCount, value, minter)
	}); err != nil {
		return err
	}

	return r.mintRemainingTo(ctx, r.recipient().Address)
}

// mintAndCheck submits one mint of count tokens landing on owner and checks
// that exactly the next count ids were appended to the owner's tokens.
func (r *Runner) mintAndCheck(ctx context.Context, count uint64, owner common.Address, message string, submit func(value *big.Int) collectible.Outcome) error {
	supply, err := r.client.TotalSupply(ctx)
	if err != nil {
		return err
	}
	owned, err := r.client.TokensOwnedBy(ctx, owner)
	if err != nil {
		return err
	}
	price, err := r.client.Price(ctx, count)
	if err != nil {
		return err
	}
	if _, err := assertAccepted(submit(price), message); err != nil {
		return err
	}
	expectedSupply := supply.Uint64() + count
	if err := r.expectTotalSupply(ctx, expectedSupply, "Total supply did not grow by the minted count"); err != nil {
		return err
	}
	expectedOwned := append(owned, tokenRange(supply.Uint64(), count)...)
	return expect(expectedOwned, "Minter should own the next minted tokens", func() (interface{}, error) { return r.client.TokensOwnedBy(ctx, owner) })
}

// mintRemainingTo mints the rest of the supply to recipient as creator, in
// batches no larger than the per transaction limit.
func (r *Runner) mintRemainingTo(ctx context.Context, recipient common.Address) error {
	supply, err := r.client.TotalSupply(ctx)
	if err != nil {
		return err
	}
	if supply.Cmp(new(big.Int).SetUint64(r.params.MaximumSupply)) > 0 {
		return failf("Total supply exceeds maximum supply", "Maximum Supply: %d\nTotal Supply: %v", r.params.MaximumSupply, supply)
	}
	remaining := r.params.MaximumSupply - supply.Uint64()
	for remaining > 0 {
		count := remaining
		if count > r.params.MaxTransactionCount {
			count = r.params.MaxTransactionCount
		}
		if err := r.mintAndCheck(ctx, count, recipient, "Creator cannot mintTo second address", func(value *big.Int) collectible.Outcome {
			return r.client.MintTo(ctx, count, recipient, value, nil)
		}); err != nil {
			return err
		}
		remaining -= count
	}
	return r.expectTotalSupply(ctx, r.params.MaximumSupply, "Total supply not equal to maximum supply after last mint")
}

func (r *Runner) expectTotalSupply(ctx context.Context, expected uint64, message string) error {
	return expect(new(big.Int).SetUint64(expected), message, func() (interface{}, error) { return r.client.TotalSupply(ctx) })
}

func (r *Runner) verifyWithdrawal(ctx context.Context) error {
	if _, err := assertAccepted(r.client.WithdrawAll(ctx, nil), "Creator cannot withdraw"); err != nil {
		return err
	}
	return expect(big.NewInt(0), "Contract balance not 0 after withdrawal", func() (interface{}, error) { return r.client.Balance(ctx) })
}
