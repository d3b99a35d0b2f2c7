package scenario

import "strings"

// Revert messages of HazelCollectibleBase and its OpenZeppelin base contracts.
// ReasonTxLimit is spelled as the contract spells it.
const (
	ReasonNotOwner    = "Ownable: caller is not the owner"
	ReasonUnderpaid   = "Message value below minting price"
	ReasonPaused      = "Contract is paused"
	ReasonPrivateSale = "This is a private sale. Only creator and whitelisted addresses can mint new tokens"
	ReasonTxLimit     = "Requested amount exeeds maximum number of tokens that can be minted within one transaction"
)

// Wrappers clients put in front of the contract's revert message. Order matters,
// longer wrappers first.
//
// TODO: the wording belongs to the node and to web3/geth and changes between
// releases, match on the decoded Error(string) payload once every supported node
// attaches revert data to eth_sendRawTransaction errors.
var reasonPrefixes = []string{
	"Error: VM Exception while processing transaction: reverted with reason string '",
	"VM Exception while processing transaction: reverted with reason string '",
	"Returned error: VM Exception while processing transaction: revert ",
	"VM Exception while processing transaction: revert ",
	"Returned error: ",
	"execution reverted: ",
}

// NormalizeReason strips known client wrappers from a revert message and lower cases it
func NormalizeReason(reason string) string {
	reason = strings.TrimSpace(reason)
	for _, prefix := range reasonPrefixes {
		if stripped := strings.Replace(reason, prefix, "", 1); stripped != reason {
			reason = stripped
			if strings.HasSuffix(prefix, "'") {
				reason = strings.TrimSuffix(reason, "'")
			}
		}
	}
	return strings.ToLower(strings.TrimSpace(reason))
}

// SameReason compares two revert messages ignoring case and client wrappers
func SameReason(actual, expected string) bool {
	return NormalizeReason(actual) == NormalizeReason(expected)
}
