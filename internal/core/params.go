package core

import (
	"strconv"
	"strings"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a variant.
type Parameter struct {
	Key         string
	Type        ParamType
	Value       string
	Description string
}

// ParameterProvider is implemented by variants that can list their tunables.
type ParameterProvider interface {
	Parameters() []Parameter
}

// IntParam builds an integer Parameter.
func IntParam(key string, v int, desc string) Parameter {
	return Parameter{Key: key, Type: ParamTypeInt, Value: strconv.Itoa(v), Description: desc}
}

// FloatParam builds a floating-point Parameter.
func FloatParam(key string, v float64, desc string) Parameter {
	return Parameter{Key: key, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64), Description: desc}
}

// BoolParam builds a boolean Parameter.
func BoolParam(key string, v bool, desc string) Parameter {
	return Parameter{Key: key, Type: ParamTypeBool, Value: strconv.FormatBool(v), Description: desc}
}

// StringParam builds a text Parameter.
func StringParam(key, v, desc string) Parameter {
	return Parameter{Key: key, Type: ParamTypeString, Value: v, Description: desc}
}

// ReadInt overwrites dst with cfg[key] when it parses and is at least min.
func ReadInt(cfg map[string]string, key string, dst *int, min int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= min {
		*dst = parsed
	}
}

// ReadFloat overwrites dst with cfg[key] when it parses and is at least min.
func ReadFloat(cfg map[string]string, key string, dst *float64, min float64) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && parsed >= min {
		*dst = parsed
	}
}

// ReadBool overwrites dst with cfg[key] when it parses.
func ReadBool(cfg map[string]string, key string, dst *bool) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
		*dst = parsed
	}
}

// ReadString overwrites dst with cfg[key] when present.
func ReadString(cfg map[string]string, key string, dst *string) {
	if v, ok := cfg[key]; ok {
		*dst = v
	}
}
