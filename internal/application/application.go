package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/ratio-calc/internal/calculator"
	"github.com/eugenenazirov/ratio-calc/internal/config"
	"github.com/eugenenazirov/ratio-calc/internal/numeric"
)

// Operand positions on the command line.
const (
	actualOperand = iota
	targetOperand
	valOperand
)

// App encapsulates the application dependencies.
type App struct {
	cfg        config.Config
	calculator calculator.Calculator
	logger     *zap.Logger
	out        io.Writer
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) *App {
	return &App{
		cfg:        cfg,
		calculator: calculator.New(),
		logger:     logger,
		out:        out,
	}
}

// Run evaluates the formula for the given operands and writes the echo line
// followed by the result. Missing or non-numeric operands count as zero. When
// the target is missing the echo shows the configured display default while
// the formula still receives zero.
func (a *App) Run(operands []string) error {
	in := calculator.Inputs{
		Actual: a.operand(operands, actualOperand, "actual"),
		Target: a.operand(operands, targetOperand, "target"),
		Val:    a.operand(operands, valOperand, "val"),
	}

	shownTarget := in.Target
	if len(operands) <= targetOperand {
		shownTarget = a.cfg.DisplayDefault
	}

	if _, err := fmt.Fprintln(a.out, numeric.Echo(in.Actual, shownTarget)); err != nil {
		return fmt.Errorf("write echo: %w", err)
	}

	result := a.calculator.Calculate(in)
	a.logger.Debug("formula evaluated",
		zap.Float64("actual", in.Actual),
		zap.Float64("target", in.Target),
		zap.Float64("val", in.Val),
		zap.Float64("result", result),
	)

	if _, err := fmt.Fprintln(a.out, numeric.Format(result)); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func (a *App) operand(operands []string, pos int, name string) float64 {
	if pos >= len(operands) {
		a.logger.Debug("operand missing", zap.String("operand", name))
		return 0
	}
	raw := operands[pos]
	value := numeric.ToFloat(raw)
	a.logger.Debug("operand parsed",
		zap.String("operand", name),
		zap.String("raw", raw),
		zap.Float64("value", value),
	)
	return value
}
