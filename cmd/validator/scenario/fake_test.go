package scenario

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/verichains/collectible-validator/cmd/validator/collectible"
	"github.com/verichains/collectible-validator/cmd/validator/wallet"
)

const ganachePrefix = "Returned error: VM Exception while processing transaction: revert "

// fakeCollectible is an in-memory HazelCollectibleBase answering the way ganache does
type fakeCollectible struct {
	address   common.Address
	params    collectible.DeployParams
	creator   common.Address
	paused    bool
	baseURI   string
	owners    []common.Address
	balance   *big.Int
	whitelist map[common.Address]bool
	events    []*collectible.Event
	txCount   int64

	// misbehaviours
	priceSurcharge    *big.Int
	silentEvents      map[string]bool
	anyonePauses      bool
	pausedReason      string
	privateSaleReason string
	keepBalance       bool
	readErr           error
	ignorePrice       bool
	ignoreTxLimit     bool
	idGap             bool // skips one token id on every non creator mint
	misdirectFirst    bool // hands the first token of a non creator mint to the zero address
	shortMintTo       bool
}

func newFakeCollectible(params collectible.DeployParams, creator common.Address) *fakeCollectible {
	return &fakeCollectible{
		address:           common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"),
		params:            params,
		creator:           creator,
		paused:            true,
		baseURI:           params.BaseURI,
		balance:           new(big.Int),
		whitelist:         make(map[common.Address]bool),
		silentEvents:      make(map[string]bool),
		pausedReason:      ReasonPaused,
		privateSaleReason: ReasonPrivateSale,
	}
}

func (f *fakeCollectible) sender(account *wallet.Account) common.Address {
	if account == nil {
		return f.creator
	}
	return account.Address
}

func (f *fakeCollectible) revert(reason string) collectible.Outcome {
	return &collectible.Rejected{Reason: ganachePrefix + reason}
}

func (f *fakeCollectible) accept(events ...*collectible.Event) collectible.Outcome {
	f.txCount++
	txHash := common.BigToHash(big.NewInt(f.txCount))
	for _, ev := range events {
		if f.silentEvents[ev.Name] {
			continue
		}
		ev.TxHash = txHash
		ev.BlockNumber = uint64(f.txCount)
		f.events = append(f.events, ev)
	}
	return &collectible.Accepted{TxHash: txHash, GasUsed: 50000, BlockNumber: uint64(f.txCount)}
}

func (f *fakeCollectible) Address() common.Address { return f.address }

func (f *fakeCollectible) TotalSupply(ctx context.Context) (*big.Int, error) {
	return big.NewInt(int64(len(f.owners))), nil
}

func (f *fakeCollectible) MaximumSupply(ctx context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.params.MaximumSupply), nil
}

func (f *fakeCollectible) MaximumTransactionCount(ctx context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.params.MaxTransactionCount), nil
}

func (f *fakeCollectible) Creator(ctx context.Context) (common.Address, error) {
	return f.creator, nil
}

func (f *fakeCollectible) Developer(ctx context.Context) (common.Address, error) {
	return f.params.Developer, nil
}

func (f *fakeCollectible) DevSaleCommission(ctx context.Context) (*big.Int, error) {
	return new(big.Int).SetUint64(f.params.DevSaleCommission), nil
}

func (f *fakeCollectible) IsPrivateMinting(ctx context.Context) (bool, error) {
	return f.params.IsPrivateMinting, nil
}

func (f *fakeCollectible) CanCreatorMintForFree(ctx context.Context) (bool, error) {
	return f.params.CanCreatorMintForFree, nil
}

func (f *fakeCollectible) BaseURI(ctx context.Context) (string, error) {
	return f.baseURI, nil
}

func (f *fakeCollectible) IsAddressWhitelisted(ctx context.Context, account common.Address) (bool, error) {
	return f.whitelist[account], nil
}

func (f *fakeCollectible) TokensOwnedBy(ctx context.Context, owner common.Address) ([]*big.Int, error) {
	ids := make([]*big.Int, 0)
	for id, tokenOwner := range f.owners {
		if tokenOwner == owner {
			ids = append(ids, big.NewInt(int64(id)))
		}
	}
	return ids, nil
}

func (f *fakeCollectible) Price(ctx context.Context, count uint64) (*big.Int, error) {
	price := new(big.Int).Mul(f.params.Price, new(big.Int).SetUint64(count))
	if f.priceSurcharge != nil && count > 1 {
		price.Add(price, f.priceSurcharge)
	}
	return price, nil
}

func (f *fakeCollectible) Paused(ctx context.Context) (bool, error) {
	if f.readErr != nil {
		return false, f.readErr
	}
	return f.paused, nil
}

func (f *fakeCollectible) Balance(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.balance), nil
}

func (f *fakeCollectible) mint(count uint64, recipient common.Address, value *big.Int, sender common.Address) collectible.Outcome {
	isCreator := sender == f.creator
	if count > f.params.MaxTransactionCount && !f.ignoreTxLimit {
		return f.revert(ReasonTxLimit)
	}
	if !isCreator && f.params.IsPrivateMinting && !f.whitelist[sender] {
		return f.revert(f.privateSaleReason)
	}
	if !isCreator && f.paused {
		return f.revert(f.pausedReason)
	}
	if uint64(len(f.owners))+count > f.params.MaximumSupply {
		return f.revert("Not enough tokens left")
	}
	price, _ := f.Price(context.Background(), count)
	if !(isCreator && f.params.CanCreatorMintForFree) && value.Cmp(price) < 0 && !f.ignorePrice {
		return f.revert(ReasonUnderpaid)
	}
	if f.idGap && !isCreator {
		f.owners = append(f.owners, common.Address{})
	}
	events := make([]*collectible.Event, 0, count)
	for i := uint64(0); i < count; i++ {
		owner := recipient
		if f.misdirectFirst && !isCreator && i == 0 {
			owner = common.Address{}
		}
		events = append(events, &collectible.Event{
			Name:   collectible.EventTokenCreated,
			Fields: map[string]interface{}{"owner": owner, "tokenId": big.NewInt(int64(len(f.owners)))},
		})
		f.owners = append(f.owners, owner)
	}
	f.balance.Add(f.balance, value)
	return f.accept(events...)
}

func (f *fakeCollectible) Mint(ctx context.Context, count uint64, value *big.Int, sender *wallet.Account) collectible.Outcome {
	return f.mint(count, f.sender(sender), value, f.sender(sender))
}

func (f *fakeCollectible) MintTo(ctx context.Context, count uint64, recipient common.Address, value *big.Int, sender *wallet.Account) collectible.Outcome {
	if f.shortMintTo && count > 1 {
		count--
	}
	return f.mint(count, recipient, value, f.sender(sender))
}

func (f *fakeCollectible) onlyOwner(sender *wallet.Account) bool {
	return f.anyonePauses || f.sender(sender) == f.creator
}

func (f *fakeCollectible) SetBaseURI(ctx context.Context, baseURI, reason string, sender *wallet.Account) collectible.Outcome {
	if !f.onlyOwner(sender) {
		return f.revert(ReasonNotOwner)
	}
	f.baseURI = baseURI
	return f.accept(&collectible.Event{
		Name:   collectible.EventBaseURIChanged,
		Fields: map[string]interface{}{"baseURI": baseURI, "reason": reason},
	})
}

func (f *fakeCollectible) Pause(ctx context.Context, paused bool, reason string, sender *wallet.Account) collectible.Outcome {
	if !f.onlyOwner(sender) {
		return f.revert(ReasonNotOwner)
	}
	f.paused = paused
	name := collectible.EventTokenUnpaused
	if paused {
		name = collectible.EventTokenPaused
	}
	return f.accept(&collectible.Event{Name: name, Fields: map[string]interface{}{"reason": reason}})
}

func (f *fakeCollectible) WithdrawAll(ctx context.Context, sender *wallet.Account) collectible.Outcome {
	if f.sender(sender) != f.creator {
		return f.revert(ReasonNotOwner)
	}
	if !f.keepBalance {
		f.balance.SetUint64(0)
	}
	return f.accept()
}

func (f *fakeCollectible) EventsForTransaction(ctx context.Context, txHash common.Hash, eventName string) ([]*collectible.Event, error) {
	result := make([]*collectible.Event, 0)
	for _, ev := range f.events {
		if ev.Name == eventName && ev.TxHash == txHash {
			result = append(result, ev)
		}
	}
	return result, nil
}

func (f *fakeCollectible) LastEvent(ctx context.Context) (*collectible.Event, error) {
	if len(f.events) == 0 {
		return nil, nil
	}
	return f.events[len(f.events)-1], nil
}
