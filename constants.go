package main

type Mode int

const (
	ModeCalc Mode = iota
	ModeFileInput
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmOverwriteFile ConfirmAction = iota
)

// Op is a pending binary operator. OpNone means nothing is selected.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return ""
}

type Theme int

const (
	ThemeDark Theme = iota
	ThemeLight
)

const (
	maxDisplayLen  = 14    // longest value the display accepts while typing
	divZeroEps     = 1e-12 // divisors closer to zero than this count as zero
	intEps         = 1e-10 // values this close to an integer render without a fraction
	maxTapeEntries = 6
)
