package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Engine is the calculator state machine. It owns all calculator state: the
// UI feeds it input events and reads the observable state back after each
// one. Arithmetic failures never escape the engine; they put it into an
// error state that digit entry or a clear dismisses.
type Engine struct {
	display        string
	errMessage     string // non-empty exactly when display is "Error"
	firstOperand   float64
	hasOperand     bool
	op             Op
	startNewNumber bool
}

var errDivideByZero = errors.New("cannot divide by 0")

func NewEngine() *Engine {
	return &Engine{display: "0", startNewNumber: true}
}

// DisplayText is the value to show prominently, or the literal "Error".
func (e *Engine) DisplayText() string { return e.display }

// ErrorMessage is empty when the engine is not in an error state.
func (e *Engine) ErrorMessage() string { return e.errMessage }

func (e *Engine) InError() bool { return e.errMessage != "" }

// PendingOperator reports the operator awaiting its right-hand operand.
func (e *Engine) PendingOperator() (Op, bool) { return e.op, e.op != OpNone }

// FirstOperand reports the stored left-hand operand, if one exists.
func (e *Engine) FirstOperand() (float64, bool) { return e.firstOperand, e.hasOperand }

// EnterDigit handles a digit key. Entering a digit dismisses an error state,
// then either starts a new number or appends to the current one, capped at
// maxDisplayLen characters.
func (e *Engine) EnterDigit(d rune) {
	if d < '0' || d > '9' {
		return
	}
	if e.errMessage != "" {
		e.dismissError()
	}
	if e.startNewNumber || e.display == "0" {
		e.display = string(d)
		e.startNewNumber = false
		return
	}
	if len(e.display) < maxDisplayLen {
		e.display += string(d)
	}
}

// EnterDecimalPoint appends the decimal point, starting a fresh "0." when a
// new number is due. A display that already holds a point is left alone.
func (e *Engine) EnterDecimalPoint() {
	if e.errMessage != "" {
		e.dismissError()
	}
	if e.startNewNumber {
		e.display = "0."
		e.startNewNumber = false
		return
	}
	if !strings.Contains(e.display, ".") && len(e.display) < maxDisplayLen {
		e.display += "."
	}
}

// SelectOperator records op as the pending operator. If an operator is
// already pending and a fresh second number has been entered, the pending
// operation is applied first, so chains like 2 + 3 * 4 evaluate left to
// right: 2+3=5, then 5*4.
func (e *Engine) SelectOperator(op Op) {
	if op == OpNone || e.errMessage != "" {
		return
	}
	n, err := strconv.ParseFloat(e.display, 64)
	if err != nil {
		e.fail("Invalid number")
		return
	}
	if e.hasOperand && e.op != OpNone && !e.startNewNumber {
		result, cerr := compute(e.firstOperand, e.op, n)
		if cerr != nil {
			// Prior operand and operator survive; op is not recorded.
			e.fail("Cannot divide by 0")
			return
		}
		e.firstOperand = result
		e.display = formatNumber(result)
	} else {
		e.firstOperand = n
		e.hasOperand = true
	}
	e.op = op
	e.startNewNumber = true
}

// Evaluate applies the pending operator to the stored operand and the
// current display value. The result becomes the new first operand and the
// pending operator is cleared.
func (e *Engine) Evaluate() {
	if e.errMessage != "" {
		return
	}
	n, err := strconv.ParseFloat(e.display, 64)
	if !e.hasOperand || e.op == OpNone || err != nil {
		e.fail("Incomplete input")
		return
	}
	result, cerr := compute(e.firstOperand, e.op, n)
	if cerr != nil {
		// Operand and operator survive so the user can fix the divisor.
		e.fail("Cannot divide by 0")
		return
	}
	e.display = formatNumber(result)
	e.firstOperand = result
	e.op = OpNone
	e.startNewNumber = true
}

// ClearEntry resets the display only. A pending operand and operator
// survive, so an in-progress operation continues with a corrected second
// number.
func (e *Engine) ClearEntry() {
	e.errMessage = ""
	e.display = "0"
	e.startNewNumber = true
}

// AllClear resets every field to the startup state.
func (e *Engine) AllClear() {
	*e = Engine{display: "0", startNewNumber: true}
}

func (e *Engine) fail(msg string) {
	e.errMessage = msg
	e.display = "Error"
}

// dismissError exits the error state without touching the pending operand or
// operator.
func (e *Engine) dismissError() {
	e.errMessage = ""
	e.display = "0"
}

// compute applies a single binary operation. Divisors within divZeroEps of
// zero count as zero.
func compute(a float64, op Op, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if math.Abs(b) < divZeroEps {
			return 0, errDivideByZero
		}
		return a / b, nil
	}
	return 0, errors.New("unknown operator")
}

// formatNumber renders a result for the display: whole values as bare
// integers, everything else with up to ten fractional digits and no
// trailing zeros.
func formatNumber(v float64) string {
	if math.Abs(v-math.Trunc(v)) < intEps {
		return strconv.FormatFloat(math.Trunc(v), 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 10, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
