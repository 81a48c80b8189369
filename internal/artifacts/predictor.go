package artifacts

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// RatingPredictor estimates a rating for a user/course pair on a fixed closed
// scale. Implementations must be total: every pair gets an estimate, with
// unseen users or courses falling back to a baseline rather than failing.
type RatingPredictor interface {
	Predict(userID, courseID string) float64
}

// FactorizedPredictor is the serving half of an offline-trained matrix
// factorization model: global mean, per-user and per-course biases, and
// latent factor vectors. Prediction is mean + bUser + bCourse + p·q with any
// term missing for unknown IDs dropped, clamped to the rating scale. A pair
// where neither side is known degrades to the global mean.
type FactorizedPredictor struct {
	globalMean    float64
	userBias      map[string]float64
	courseBias    map[string]float64
	userFactors   map[string][]float64
	courseFactors map[string][]float64
	min, max      float64
}

func NewFactorizedPredictor(
	globalMean float64,
	userBias, courseBias map[string]float64,
	userFactors, courseFactors map[string][]float64,
	min, max float64,
) (*FactorizedPredictor, error) {
	if max <= min {
		return nil, fmt.Errorf("rating scale invalid: [%.1f, %.1f]", min, max)
	}

	var factorDim = -1
	for id, f := range userFactors {
		if factorDim == -1 {
			factorDim = len(f)
		}
		if len(f) != factorDim {
			return nil, fmt.Errorf("user %q has %d latent factors, expected %d", id, len(f), factorDim)
		}
	}
	for id, f := range courseFactors {
		if factorDim == -1 {
			factorDim = len(f)
		}
		if len(f) != factorDim {
			return nil, fmt.Errorf("course %q has %d latent factors, expected %d", id, len(f), factorDim)
		}
	}

	return &FactorizedPredictor{
		globalMean:    globalMean,
		userBias:      userBias,
		courseBias:    courseBias,
		userFactors:   userFactors,
		courseFactors: courseFactors,
		min:           min,
		max:           max,
	}, nil
}

func (p *FactorizedPredictor) Predict(userID, courseID string) float64 {
	estimate := p.globalMean

	if bias, ok := p.userBias[userID]; ok {
		estimate += bias
	}
	if bias, ok := p.courseBias[courseID]; ok {
		estimate += bias
	}

	uf, uok := p.userFactors[userID]
	cf, cok := p.courseFactors[courseID]
	if uok && cok && len(uf) == len(cf) && len(uf) > 0 {
		estimate += floats.Dot(uf, cf)
	}

	if estimate < p.min {
		return p.min
	}
	if estimate > p.max {
		return p.max
	}
	return estimate
}
