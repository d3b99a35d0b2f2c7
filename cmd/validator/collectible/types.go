package collectible

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Outcome is the result of a state mutating call: *Accepted or *Rejected, never both.
type Outcome interface {
	outcome()
	String() string
}

// Accepted is a transaction mined with success status
type Accepted struct {
	TxHash      common.Hash
	GasUsed     uint64
	BlockNumber uint64
}

// Rejected is a call refused by the contract or failed before it was mined
type Rejected struct {
	Reason string
}

func (*Accepted) outcome() {}
func (*Rejected) outcome() {}

func (a *Accepted) String() string {
	return fmt.Sprintf("accepted tx=%s gasUsed=%d block=%d", a.TxHash.Hex(), a.GasUsed, a.BlockNumber)
}

func (r *Rejected) String() string {
	return "rejected: " + r.Reason
}

// Event is a decoded contract log
type Event struct {
	Name        string
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
	Fields      map[string]interface{}
}

// DeployParams are the constructor arguments of the collectible contract. They are
// fixed at deployment and are what the initial state is checked against.
type DeployParams struct {
	Name                  string
	Symbol                string
	BaseURI               string
	MaximumSupply         uint64
	Price                 *big.Int
	MaxTransactionCount   uint64
	Developer             common.Address
	DevSaleCommission     uint64
	IsPrivateMinting      bool
	CanCreatorMintForFree bool
}

// ConstructorArgs returns the params in constructor order
func (p *DeployParams) ConstructorArgs() []interface{} {
	return []interface{}{
		p.Name,
		p.Symbol,
		p.BaseURI,
		new(big.Int).SetUint64(p.MaximumSupply),
		new(big.Int).Set(p.Price),
		new(big.Int).SetUint64(p.MaxTransactionCount),
		p.Developer,
		new(big.Int).SetUint64(p.DevSaleCommission),
		p.IsPrivateMinting,
		p.CanCreatorMintForFree,
	}
}

// State is a snapshot of every view of the contract
type State struct {
	TotalSupply           *big.Int
	MaximumSupply         *big.Int
	MaxTransactionCount   *big.Int
	UnitPrice             *big.Int
	Paused                bool
	BaseURI               string
	Creator               common.Address
	Developer             common.Address
	DevSaleCommission     *big.Int
	IsPrivateMinting      bool
	CanCreatorMintForFree bool
	Balance               *big.Int
}
