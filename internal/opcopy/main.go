// The opcopy binary generates a Go file for use in the `specops` package.
// It mirrors all EVM opcodes that don't have special representations,
// provides a mapping from all opcodes to the number of values they pop/push
// from the stack, and cross-references package op's StandardLibrary against
// the opcode table to generate the identifier-to-opcode lookup that package
// balls uses to emit schedule.Comp steps.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/ethereum/go-ethereum/params"

	"github.com/solidifylabs/balls/op"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	type opParams struct {
		Op        vm.OpCode
		Pop, Push uint
		Special   bool
	}
	var ops []*opParams

	for i := 0; i < 256; i++ {
		o := vm.OpCode(i)
		if vm.StringToOp(o.String()) != o { // invalid opcode
			continue
		}
		ops = append(ops, &opParams{
			Op:      o,
			Special: (o.IsPush() && o != vm.PUSH0) || o == vm.JUMPDEST,
		})
	}

	rules := params.Rules{IsCancun: true}
	jumpTable, err := vm.LookupInstructionSet(rules)
	if err != nil {
		return fmt.Errorf("go-ethereum/core/vm.LookupInstructionSet(%+v): %v", rules, err)
	}
	for _, o := range ops {
		minStack, maxStack := jumpTable[o.Op].Stack()

		switch o.Op & 0xf0 {
		case vm.DUP1:
			// See comment in generated code.
			o.Pop = 1
			o.Push = 2
		case vm.SWAP1:
			o.Pop = 1
			o.Push = 1
		default:
			// Invert the derivation of minStack/maxStack from pop/push:
			// https://github.com/ethereum/go-ethereum/blob/57d2b552c74dbd03b9909e6b8cd7b3de1f8b40e9/core/vm/stack_table.go
			o.Pop = uint(minStack)
			o.Push = uint(params.StackLimit) + o.Pop - uint(maxStack)
		}
	}

	// Every op.Descriptor.Ident in the standard library names a plain EVM
	// opcode by its upper-cased mnemonic (e.g. "sstore" -> vm.SSTORE); cross
	// reference the two so package balls doesn't have to hand-maintain the
	// mapping from scheduled Comp steps to concrete opcodes.
	var idents []string
	for ident := range op.StandardLibrary() {
		want := strings.ToUpper(ident)
		if got := vm.StringToOp(want).String(); got != want {
			return fmt.Errorf("op.StandardLibrary() ident %q has no corresponding vm.OpCode (got %q)", ident, got)
		}
		idents = append(idents, ident)
	}
	sort.Strings(idents)

	tmpl := template.Must(template.New("go").Parse(`package specops

//
// GENERATED CODE - DO NOT EDIT
//

import (
	"github.com/ethereum/go-ethereum/core/vm"

	"github.com/solidifylabs/balls/specops/types"
)

// Aliases of all regular vm.OpCode constants that don't have "special" replacements.
const (
{{- range .Ops}}{{if not .Special}}
	{{.Op.String}} = types.OpCode(vm.{{.Op.String}})
{{- end}}{{end}}
)

// stackDeltas maps all valid vm.OpCode values to the number of values they
// pop and then push from/to the stack.
//
// Although DUPs technically only push a single value and SWAPs none, they are
// recorded as popping and pushing one more than they actually do as this
// implies a minimum stack depth to begin with but with the same effective
// change.
var stackDeltas = map[vm.OpCode]stackDelta{
{{- range .Ops}}
	vm.{{.Op.String}}: {pop: {{.Pop}}, push: {{.Push}}},
{{- end}}
}

// OpcodeByIdent maps every op.Descriptor.Ident in op.StandardLibrary to the
// opcode that implements it, for package balls's Emit to resolve a
// schedule.Comp step against the ir.Graph's recorded Node.OpIdent.
var OpcodeByIdent = map[string]types.OpCode{
{{- range .Idents}}
	"{{.}}": {{. | ToUpper}},
{{- end}}
}
`).Funcs(template.FuncMap{"ToUpper": strings.ToUpper}))

	data := struct {
		Ops    []*opParams
		Idents []string
	}{ops, idents}
	if err := tmpl.Execute(os.Stdout, data); err != nil {
		return fmt.Errorf("%T.Execute(os.Stdout, …): %v", tmpl, err)
	}
	return nil
}
