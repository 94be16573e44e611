package services

import (
	"encoding/json"
	"fmt"
	"os"
)

// Predictor is the opaque pretrained regression capability. The artifact is
// trained offline; this package only evaluates it.
type Predictor interface {
	Predict(features []float64) float64
}

// LinearModel holds exported linear-regression coefficients.
type LinearModel struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

func LoadLinearModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if len(m.Weights) == 0 {
		return nil, fmt.Errorf("model %s has no weights", path)
	}
	return &m, nil
}

func (m *LinearModel) Predict(features []float64) float64 {
	sum := m.Intercept
	n := len(features)
	if len(m.Weights) < n {
		n = len(m.Weights)
	}
	for i := 0; i < n; i++ {
		sum += m.Weights[i] * features[i]
	}
	return sum
}

// MinMaxScaler mirrors the value scaler fitted alongside the model.
type MinMaxScaler struct {
	DataMin float64 `json:"data_min"`
	DataMax float64 `json:"data_max"`
}

func LoadScaler(path string) (*MinMaxScaler, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	var s MinMaxScaler
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scaler: %w", err)
	}
	if s.DataMax == s.DataMin {
		return nil, fmt.Errorf("scaler %s has a degenerate range", path)
	}
	return &s, nil
}

func (s *MinMaxScaler) Transform(v float64) float64 {
	return (v - s.DataMin) / (s.DataMax - s.DataMin)
}

func (s *MinMaxScaler) Inverse(v float64) float64 {
	return v*(s.DataMax-s.DataMin) + s.DataMin
}
