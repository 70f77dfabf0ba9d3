package ising

import (
	"strconv"

	"isinglab/internal/core"
)

// Parameters reports the current tunables for display.
func (s *Ising) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", s.w),
				intParam("h", "Height", s.h),
			},
		},
		{
			Name: "Dynamics",
			Params: []core.Parameter{
				floatParam("beta", "Inverse temperature", s.beta),
				intParam("sweeps_per_frame", "Sweeps per frame", s.sweepsPerFrame),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the viewer.
func (s *Ising) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "beta",
			Label:  "Beta",
			Type:   core.ParamTypeFloat,
			Step:   0.02,
			Min:    0.02,
			HasMin: true,
		},
		{
			Key:    "sweeps_per_frame",
			Label:  "Sweeps/frame",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    1,
			HasMin: true,
			Max:    64,
			HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable by key.
func (s *Ising) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "beta":
		if value <= 0 {
			return false
		}
		s.beta = value
		return true
	}
	return false
}

// SetIntParameter updates an integer tunable by key.
func (s *Ising) SetIntParameter(key string, value int) bool {
	switch key {
	case "sweeps_per_frame":
		if value < 1 {
			return false
		}
		s.sweepsPerFrame = value
		return true
	}
	return false
}

// SweepsPerFrame reports how many sweeps the viewer should run per frame.
func (s *Ising) SweepsPerFrame() int {
	if s.sweepsPerFrame < 1 {
		return 1
	}
	return s.sweepsPerFrame
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'g', 4, 64),
	}
}
