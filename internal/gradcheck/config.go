package gradcheck

import (
	"github.com/born-ml/autograd/internal/parallel"
	"github.com/pkg/errors"
)

// Config controls a gradient check.
type Config struct {
	Step   float64 // Central-difference step.
	AbsTol float64 // Absolute tolerance between analytic and numeric gradients.
	RelTol float64 // Relative tolerance between analytic and numeric gradients.
	Seed   uint64  // Seed for random inputs and output weights.
	Trials int     // Random input draws per case.

	Parallel parallel.Config // Cases run concurrently, each on its own tape.
}

// DefaultConfig returns tolerances suited to float64 central differences.
func DefaultConfig() Config {
	return Config{
		Step:     1e-6,
		AbsTol:   1e-6,
		RelTol:   1e-4,
		Seed:     42,
		Trials:   3,
		Parallel: parallel.DefaultConfig(),
	}
}

// Validate returns an error if cfg cannot produce a meaningful check.
func (cfg Config) Validate() error {
	if cfg.Step <= 0 {
		return errors.Errorf("gradcheck: step must be positive, got %g", cfg.Step)
	}
	if cfg.AbsTol < 0 || cfg.RelTol < 0 {
		return errors.Errorf("gradcheck: tolerances must be non-negative, got abs=%g rel=%g", cfg.AbsTol, cfg.RelTol)
	}
	if cfg.Trials < 1 {
		return errors.Errorf("gradcheck: at least one trial required, got %d", cfg.Trials)
	}
	return nil
}
