package collectible

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	EventTokenCreated   = "TokenCreated"
	EventTokenPaused    = "TokenPaused"
	EventTokenUnpaused  = "TokenUnpaused"
	EventBaseURIChanged = "BaseURIChanged"
)

// Methods the client calls, a deployed contract must dispatch all of them.
var Methods = []string{
	"totalSupply", "maximumSupply", "maximumTransactionCount", "creator", "developer",
	"getDevSaleCommission", "isPrivateMinting", "canCreatorMintForFree", "getBaseURI",
	"isAddressWhitelisted", "tokensOwnedByAddress", "getPrice", "paused",
	"mint", "mintTo", "setBaseURI", "pause", "withdrawAll",
}

// HazelCollectibleABI is the interface of HazelCollectibleBase merged with the
// inherited Pausable, Ownable and ERC721 entries it is called through.
const HazelCollectibleABI = `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"},
		{"name":"baseURI","type":"string"},
		{"name":"maximumSupply","type":"uint256"},
		{"name":"price","type":"uint256"},
		{"name":"maximumTransactionCount","type":"uint256"},
		{"name":"developer","type":"address"},
		{"name":"devSaleCommission","type":"uint256"},
		{"name":"isPrivateMinting","type":"bool"},
		{"name":"canCreatorMintForFree","type":"bool"}
	]},
	{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"maximumSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"maximumTransactionCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"creator","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"developer","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"getDevSaleCommission","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"isPrivateMinting","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"canCreatorMintForFree","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getBaseURI","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"isAddressWhitelisted","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"tokensOwnedByAddress","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
	{"type":"function","name":"getPrice","stateMutability":"view","inputs":[{"name":"count","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"paused","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"mint","stateMutability":"payable","inputs":[{"name":"count","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"mintTo","stateMutability":"payable","inputs":[{"name":"count","type":"uint256"},{"name":"recipient","type":"address"}],"outputs":[]},
	{"type":"function","name":"setBaseURI","stateMutability":"nonpayable","inputs":[{"name":"baseURI","type":"string"},{"name":"reason","type":"string"}],"outputs":[]},
	{"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[{"name":"paused","type":"bool"},{"name":"reason","type":"string"}],"outputs":[]},
	{"type":"function","name":"withdrawAll","stateMutability":"nonpayable","inputs":[],"outputs":[]},
	{"type":"event","name":"TokenCreated","anonymous":false,"inputs":[
		{"name":"owner","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true}
	]},
	{"type":"event","name":"TokenPaused","anonymous":false,"inputs":[{"name":"reason","type":"string","indexed":false}]},
	{"type":"event","name":"TokenUnpaused","anonymous":false,"inputs":[{"name":"reason","type":"string","indexed":false}]},
	{"type":"event","name":"BaseURIChanged","anonymous":false,"inputs":[
		{"name":"baseURI","type":"string","indexed":false},
		{"name":"reason","type":"string","indexed":false}
	]},
	{"type":"event","name":"Paused","anonymous":false,"inputs":[{"name":"account","type":"address","indexed":false}]},
	{"type":"event","name":"Unpaused","anonymous":false,"inputs":[{"name":"account","type":"address","indexed":false}]},
	{"type":"event","name":"Transfer","anonymous":false,"inputs":[
		{"name":"from","type":"address","indexed":true},
		{"name":"to","type":"address","indexed":true},
		{"name":"tokenId","type":"uint256","indexed":true}
	]},
	{"type":"event","name":"OwnershipTransferred","anonymous":false,"inputs":[
		{"name":"previousOwner","type":"address","indexed":true},
		{"name":"newOwner","type":"address","indexed":true}
	]}
]`

// ParsedABI returns the embedded contract ABI
func ParsedABI() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(HazelCollectibleABI))
	if err != nil {
		panic(err)
	}
	return parsed
}
