package session

import (
	"context"
	"fmt"
)

// Outcome is the predicted result of a hand against the opponents
type Outcome int

// constants for Outcome
const (
	Loss Outcome = iota
	Draw
	Win
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// MarshalText encodes the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an outcome from its name
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{Loss, Draw, Win} {
		if outcome.String() == string(text) {
			*o = outcome
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

// Prediction holds the probability of each outcome
type Prediction struct {
	Loss float64 `json:"loss"`
	Draw float64 `json:"draw"`
	Win  float64 `json:"win"`
}

// Outcome returns the most likely outcome. Ties go to the earlier outcome.
func (p Prediction) Outcome() Outcome {
	outcome, best := Loss, p.Loss
	if p.Draw > best {
		outcome, best = Draw, p.Draw
	}

	if p.Win > best {
		outcome = Win
	}

	return outcome
}

// Predictor estimates the outcome of a completed hand
type Predictor interface {
	Predict(ctx context.Context, features Features) (Prediction, error)
}

// PredictorFunc adapts a function to the Predictor interface
type PredictorFunc func(ctx context.Context, features Features) (Prediction, error)

// Predict calls fn
func (fn PredictorFunc) Predict(ctx context.Context, features Features) (Prediction, error) {
	return fn(ctx, features)
}

// Predict hands the feature row of the session to the predictor
func (s *Session) Predict(ctx context.Context, p Predictor) (Prediction, error) {
	features, err := s.Features()
	if err != nil {
		return Prediction{}, err
	}

	prediction, err := p.Predict(ctx, features)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict: %w", err)
	}

	s.logger.WithField("outcome", prediction.Outcome().String()).Debug("prediction")
	return prediction, nil
}
