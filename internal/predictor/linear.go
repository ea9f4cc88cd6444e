package predictor

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/manethdewpura/AssisTea-Mobile-App-sub000/internal/models"
	"gopkg.in/yaml.v3"
)

// Coefficients parameterize the linear efficiency model.
type Coefficients struct {
	Intercept     float64                        `yaml:"intercept"`
	Experience    float64                        `yaml:"experience"`
	Age           float64                        `yaml:"age"`
	AgeSquared    float64                        `yaml:"age_squared"`
	Slope         float64                        `yaml:"slope"`
	GenderOffsets map[models.Gender]float64      `yaml:"gender_offsets"`
	TierOffsets   map[models.QualityTier]float64 `yaml:"tier_offsets"`
}

// DefaultCoefficients is used when no model file is configured.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Intercept:  6.0,
		Experience: 0.45,
		Age:        0.18,
		AgeSquared: -0.0025,
		Slope:      -0.08,
		GenderOffsets: map[models.Gender]float64{
			models.GenderMale:   0.2,
			models.GenderFemale: 0.6,
		},
		TierOffsets: map[models.QualityTier]float64{
			models.QualityHigh:   -1.5,
			models.QualityMedium: 0,
			models.QualityLow:    1.2,
		},
	}
}

// Linear is a local predictor backed by a linear model. Its coefficients are
// loaded on Initialize, either from a YAML file or from the defaults.
type Linear struct {
	path string

	mu    sync.RWMutex
	coef  Coefficients
	ready bool
}

// NewLinear returns a predictor reading coefficients from the YAML file at
// path, or using DefaultCoefficients when path is empty. Coefficients and
// offsets missing from the file are zero.
func NewLinear(path string) *Linear {
	return &Linear{path: path}
}

func (l *Linear) IsReady() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ready
}

func (l *Linear) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	coef := DefaultCoefficients()
	if l.path != "" {
		f, err := os.Open(l.path)
		if err != nil {
			return fmt.Errorf("open model file: %w", err)
		}
		defer f.Close()

		// A model file replaces the defaults entirely.
		coef = Coefficients{}
		if err := yaml.NewDecoder(f).Decode(&coef); err != nil {
			return fmt.Errorf("decode model file %s: %w", l.path, err)
		}
	}

	l.mu.Lock()
	l.coef = coef
	l.ready = true
	l.mu.Unlock()
	return nil
}

func (l *Linear) PredictBatch(ctx context.Context, inputs []ScoringInput) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.ready {
		return nil, ErrNotReady
	}

	out := make([]float64, len(inputs))
	for i, in := range inputs {
		out[i] = l.score(in)
	}
	return out, nil
}

func (l *Linear) score(in ScoringInput) float64 {
	c := l.coef
	age := float64(in.Age)
	v := c.Intercept +
		c.Experience*float64(in.YearsExperience) +
		c.Age*age +
		c.AgeSquared*age*age +
		c.Slope*in.FieldSlope +
		c.GenderOffsets[in.Gender] +
		c.TierOffsets[in.QualityTier]
	if v < 0 {
		return 0
	}
	return v
}
