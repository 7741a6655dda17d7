package decoder

import "github.com/pkg/errors"

// Op names the operation of instructions that share a payload shape.
type Op uint8

const (
	OpInvalid Op = iota
	OpHlt
	OpNop
	OpWait
	OpLock
	OpStc
	OpClc
	OpCmc
	OpStd
	OpCld
	OpSti
	OpCli
	OpCbw
	OpCwd
	OpDaa
	OpDas
	OpAaa
	OpAas
	OpAam
	OpAad
	OpLahf
	OpSahf
	OpPushf
	OpPopf
	OpIret
	OpXlat
	OpLea
	OpLds
	OpLes
)

var opNames = []string{
	"(invalid)",
	"hlt", "nop", "wait", "lock",
	"stc", "clc", "cmc", "std", "cld", "sti", "cli",
	"cbw", "cwd",
	"daa", "das", "aaa", "aas", "aam", "aad",
	"lahf", "sahf", "pushf", "popf",
	"iret", "xlat",
	"lea", "lds", "les",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpInvalid]
}

// Condition is the low nibble of 70-7F.
type Condition uint8

const (
	CondO Condition = iota
	CondNO
	CondB
	CondNB
	CondZ
	CondNZ
	CondBE
	CondNBE
	CondS
	CondNS
	CondP
	CondNP
	CondL
	CondNL
	CondLE
	CondNLE
)

var conditionOrder = [16]Condition{
	CondO, CondNO, CondB, CondNB, CondZ, CondNZ, CondBE, CondNBE,
	CondS, CondNS, CondP, CondNP, CondL, CondNL, CondLE, CondNLE,
}

// starts with '0b0111'
var jumpLabels = []string{
	"jo", "jno", "jb", "jnb", "jz", "jnz", "jbe", "jnbe",
	"js", "jns", "jp", "jnp", "jl", "jnl", "jle", "jnle",
}

func ConditionFromIndex(idx uint8) (Condition, error) {
	if int(idx) >= len(conditionOrder) {
		return 0, errors.Errorf("condition index out of range: %d", idx)
	}
	return conditionOrder[idx], nil
}

func (c Condition) String() string {
	if int(c) < len(jumpLabels) {
		return jumpLabels[c]
	}
	return "j?"
}

// LoopCondition is opcode - 0xE0.
type LoopCondition uint8

const (
	LoopNZ LoopCondition = iota
	LoopZ
	LoopAlways
)

var loopOrder = [3]LoopCondition{LoopNZ, LoopZ, LoopAlways}

var loopLabels = []string{"loopnz", "loopz", "loop"}

func LoopConditionFromIndex(idx uint8) (LoopCondition, error) {
	if int(idx) >= len(loopOrder) {
		return 0, errors.Errorf("loop condition index out of range: %d", idx)
	}
	return loopOrder[idx], nil
}

func (l LoopCondition) String() string {
	if int(l) < len(loopLabels) {
		return loopLabels[l]
	}
	return "loop?"
}

type RepMode uint8

const (
	RepZ  RepMode = iota // F3, also plain rep
	RepNZ                // F2
)

func (m RepMode) String() string {
	if m == RepNZ {
		return "repnz"
	}
	return "repz"
}
