package program

import (
	"fmt"
	"io"

	"github.com/lgpkit/lgp/instruction"
	"github.com/lgpkit/lgp/types"
)

// CExportOptions configures WriteC.
type CExportOptions struct {
	// FunctionName is the emitted C function's name, defaulting to "gp".
	FunctionName string
	// WithMain additionally emits a main() wrapper that parses argc/argv as
	// inputs and prints the output registers.
	WithMain bool
}

// WriteC translates the program into a C function `void gp(double r[N])`
// containing the full instruction list: effective instructions as
// statements, non-effective ones as comments. Effectiveness is recomputed
// from Instructions, so the effective-program cache need not be current.
// With WithMain, the main wrapper initialises input registers to 0.0 before
// reading argv, calculation registers to their default value, and constant
// registers to their configured values.
func (p *Program[T]) WriteC(w io.Writer, opts CExportOptions) error {
	name := opts.FunctionName
	if name == "" {
		name = "gp"
	}

	n := p.Registers.Len()

	effectiveSet := make(map[int]bool, len(p.effective))
	// Re-derive effectiveness per instruction with a fresh backward pass, so
	// the markers line up positionally with p.Instructions.
	marked, _ := backwardLiveAnalysis(p.Instructions, p.Operations, p.Registers, p.OutputRegisterIndices)
	for i, m := range marked {
		if m {
			effectiveSet[i] = true
		}
	}

	if _, err := fmt.Fprintf(w, "void %s(double r[%d]) {\n", name, n); err != nil {
		return err
	}

	for i, ins := range p.Instructions {
		line := p.renderCLine(ins)
		if effectiveSet[i] {
			if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "    // %s\n", line); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(w, "}\n"); err != nil {
		return err
	}

	if opts.WithMain {
		if err := p.writeCMain(w, name); err != nil {
			return err
		}
	}

	return nil
}

func (p *Program[T]) renderCLine(ins instruction.Instruction[T]) string {
	op := p.Operations[ins.OpIndex]

	args := make([]string, len(ins.Operands))
	for i, opd := range ins.Operands {
		args[i] = fmt.Sprintf("r[%d]", opd)
	}

	if op.IsBranch() {
		return fmt.Sprintf("if (%s(%s)) {", op.Symbol(), joinArgs(args))
	}

	switch op.Arity().Int() {
	case 1:
		return fmt.Sprintf("r[%d] = %s(%s);", ins.Destination, op.Symbol(), joinArgs(args))
	case 2:
		return fmt.Sprintf("r[%d] = %s %s %s;", ins.Destination, args[0], op.Symbol(), args[1])
	default:
		return fmt.Sprintf("r[%d] = %s(%s);", ins.Destination, op.Symbol(), joinArgs(args))
	}
}

func joinArgs(args []string) string {
	out := ""

	for i, a := range args {
		if i > 0 {
			out += ", "
		}

		out += a
	}

	return out
}

func (p *Program[T]) writeCMain(w io.Writer, name string) error {
	nIn := p.Registers.NumInput()

	if _, err := fmt.Fprintf(w, "\n#include <stdio.h>\n#include <stdlib.h>\n\nint main(int argc, char **argv) {\n"); err != nil {
		return err
	}

	n := p.Registers.Len()

	if _, err := fmt.Fprintf(w, "    double r[%d] = {0};\n", n); err != nil {
		return err
	}

	defaults := p.Registers.Clone()
	defaults.Reset()

	for i := 0; i < n; i++ {
		regType := p.Registers.RegisterType(i)
		if regType != types.Constant && regType != types.Calculation {
			continue
		}

		v, err := defaults.Get(i)
		if err != nil {
			return err
		}

		if regType == types.Calculation && p.Ops.ToFloat64(v) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "    r[%d] = %v;\n", i, p.Ops.ToFloat64(v)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "    for (int i = 0; i < %d && i + 1 < argc; i++) r[i] = atof(argv[i + 1]);\n", nIn); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "    %s(r);\n", name); err != nil {
		return err
	}

	for _, idx := range p.OutputRegisterIndices {
		if _, err := fmt.Fprintf(w, "    printf(\"%%f\\n\", r[%d]);\n", idx); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "    return 0;\n}\n"); err != nil {
		return err
	}

	return nil
}
