package experiment

import (
	"context"
	"math"

	"github.com/born-ml/qubit/internal/quantum"
	"github.com/born-ml/qubit/internal/random"
)

// Directions are the three measurement settings available to Alice and Bob.
var Directions = [3]quantum.Basis{
	quantum.Deg0,
	quantum.FromRadians(2 * math.Pi / 3),
	quantum.FromRadians(4 * math.Pi / 3),
}

// DirectionNames label Directions.
var DirectionNames = [3]string{"0°", "120°", "240°"}

// LocalBound is the smallest agreement rate any local hidden-variable model
// can produce when both sides pick among Directions uniformly.
const LocalBound = 5.0 / 9.0

// BellResult tallies a Bell experiment.
type BellResult struct {
	Trials uint64
	Agree  uint64
	// Settings[a][b] counts trials where Alice used direction a and Bob b;
	// SettingsAgree counts the agreeing ones among them.
	Settings      [3][3]uint64
	SettingsAgree [3][3]uint64
}

// AgreeRate returns the overall fraction of agreeing outcomes.
func (r BellResult) AgreeRate() float64 {
	if r.Trials == 0 {
		return 0
	}
	return float64(r.Agree) / float64(r.Trials)
}

// SettingRate returns the agreement rate for one pair of directions.
func (r BellResult) SettingRate(alice, bob int) float64 {
	if r.Settings[alice][bob] == 0 {
		return 0
	}
	return float64(r.SettingsAgree[alice][bob]) / float64(r.Settings[alice][bob])
}

// ViolatesLocalBound reports whether the agreement rate fell below LocalBound.
func (r BellResult) ViolatesLocalBound() bool {
	return r.AgreeRate() < LocalBound
}

// BellPair prepares (|00⟩ + |11⟩)/√2 as the 45° qubit composed with |0⟩ and
// passed through CNOT.
func BellPair() (*quantum.System, error) {
	s, err := quantum.Plus().System().AddSystem(quantum.Zero().System())
	if err != nil {
		return nil, err
	}
	return quantum.ApplyCNOT(s)
}

// Bell runs Bell's experiment on cfg.Trials entangled pairs.
//
// In every trial Alice measures qubit 0 along a random direction, then Bob
// measures the remaining qubit along his own random direction. Alice's outcome
// leaves Bob with |0⟩ or |1⟩, so Bob agrees with probability cos²θ of his own
// direction: always at 0°, a quarter of the time at 120° and 240°. Overall the
// pairs agree half the time, below the 5/9 any local hidden-variable model
// must reach.
func Bell(ctx context.Context, cfg Config) (BellResult, error) {
	pair, err := BellPair()
	if err != nil {
		return BellResult{}, err
	}

	parts, err := run(ctx, cfg, func(src random.Source, acc *BellResult) error {
		alice, bob := pickDirection(src), pickDirection(src)

		rest, outcome, err := pair.Measure(0, Directions[alice], src)
		if err != nil {
			return err
		}
		partner, err := rest.Qubit()
		if err != nil {
			return err
		}
		_, bobOn, err := partner.Measure(Directions[bob], src)
		if err != nil {
			return err
		}

		acc.Trials++
		acc.Settings[alice][bob]++
		if outcome.On == bobOn {
			acc.Agree++
			acc.SettingsAgree[alice][bob]++
		}
		return nil
	})
	if err != nil {
		return BellResult{}, err
	}

	var res BellResult
	for _, p := range parts {
		res.Trials += p.Trials
		res.Agree += p.Agree
		for a := range p.Settings {
			for b := range p.Settings[a] {
				res.Settings[a][b] += p.Settings[a][b]
				res.SettingsAgree[a][b] += p.SettingsAgree[a][b]
			}
		}
	}

	l := cfg.logger()
	l.Info().
		Uint64("trials", res.Trials).
		Float64("agree", res.AgreeRate()).
		Bool("violates_local_bound", res.ViolatesLocalBound()).
		Msg("bell experiment finished")
	return res, nil
}

// pickDirection draws one of the three directions uniformly.
func pickDirection(src random.Source) int {
	if src.Bernoulli(1.0 / 3) {
		return 0
	}
	if src.Bernoulli(0.5) {
		return 2
	}
	return 1
}
