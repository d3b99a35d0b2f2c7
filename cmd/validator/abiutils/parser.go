package abiutils

import (
	"github.com/ethereum/go-ethereum/core/vm"
)

// ParseMethodIds parses the contract byte code to get all 4-bytes method ids.
// Single function calls will follow the following repeating pattern:
//
//	DUP1
//	PUSH4 <4-byte function signature>
//	EQ
//	PUSH2 <jumpdestination for the function>
//	JUMPI
//
// Optimized dispatchers split the selector space with PUSH4 + GT as well, so every
// PUSH4 operand is collected. The result is a superset of the dispatched ids.
func ParseMethodIds(bytecode []byte) []MethodId {
	seen := make(map[MethodId]struct{})
	ids := make([]MethodId, 0)
	for pc := 0; pc < len(bytecode); pc++ {
		op := vm.OpCode(bytecode[pc])
		if op < vm.PUSH1 || op > vm.PUSH32 {
			continue
		}
		size := int(op-vm.PUSH1) + 1
		if op == vm.PUSH4 && pc+size < len(bytecode) {
			var id MethodId
			copy(id[:], bytecode[pc+1:pc+1+size])
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		pc += size
	}
	return ids
}
