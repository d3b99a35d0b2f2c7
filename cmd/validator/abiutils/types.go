package abiutils

import (
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/status-im/keycard-go/hexutils"
)

type MethodId [4]byte

func (id MethodId) String() string {
	return hexutils.BytesToHex(id[:])
}

func HexToMethodId(s string) MethodId {
	id := MethodId{}
	copy(id[:], hexutils.HexToBytes(s))
	return id
}

// Interface is a named subset of a contract ABI, used to check whether deployed
// bytecode dispatches the methods we are going to call.
type Interface struct {
	abi.ABI
	Name string
}

// NewInterface builds an interface from the named methods of contractABI, every
// method is included when no name is given.
func NewInterface(name string, contractABI abi.ABI, methods ...string) (Interface, error) {
	selected := make(map[string]abi.Method)
	if len(methods) == 0 {
		for key, method := range contractABI.Methods {
			selected[key] = method
		}
	}
	for _, key := range methods {
		method, ok := contractABI.Methods[key]
		if !ok {
			return Interface{}, &MissingMethodError{Interface: name, Methods: []string{key}}
		}
		selected[key] = method
	}
	return Interface{
		ABI: abi.ABI{
			Constructor: contractABI.Constructor,
			Methods:     selected,
			Events:      contractABI.Events,
			Errors:      contractABI.Errors,
		},
		Name: name,
	}, nil
}

// MethodIds returns the 4-bytes ids of all interface methods
func (i *Interface) MethodIds() map[MethodId]string {
	ids := make(map[MethodId]string, len(i.Methods))
	for name, method := range i.Methods {
		var id MethodId
		copy(id[:], method.ID)
		ids[id] = name
	}
	return ids
}

// Missing returns the sorted names of interface methods whose id is not in the given set
func (i *Interface) Missing(ids []MethodId) []string {
	present := make(map[MethodId]struct{}, len(ids))
	for _, id := range ids {
		present[id] = struct{}{}
	}
	missing := make([]string, 0)
	for id, name := range i.MethodIds() {
		if _, ok := present[id]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Implemented reports an error listing every interface method the bytecode does not dispatch
func (i *Interface) Implemented(bytecode []byte) error {
	if missing := i.Missing(ParseMethodIds(bytecode)); len(missing) > 0 {
		return &MissingMethodError{Interface: i.Name, Methods: missing}
	}
	return nil
}
