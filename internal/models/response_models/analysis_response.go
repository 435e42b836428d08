package response_models

import (
	"encoding/json"
	"errors"
)

type AnalysisVariant string

const (
	VariantCoach   AnalysisVariant = "coach"
	VariantProfile AnalysisVariant = "profile"
)

// CoachResult is free-form prose plus a plan whose steps are separated by
// blank lines.
type CoachResult struct {
	Analysis string `json:"analysis"`
	Plan     string `json:"plan"`
}

// ProfileResult classifies the user into one of four archetypes.
type ProfileResult struct {
	Profile     string `json:"profile"`
	Description string `json:"description,omitempty"`
}

// AnalysisResult is a tagged union: exactly one of Coach or Profile is
// populated, matching the deployment's active variant. Fallback marks results
// produced without a completion backend.
type AnalysisResult struct {
	Variant  AnalysisVariant
	Coach    *CoachResult
	Profile  *ProfileResult
	Fallback bool
}

// MarshalJSON flattens the union onto the wire: the coach fields or the
// profile fields at the top level, plus "fallback": true when set.
func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	out := map[string]any{}
	switch r.Variant {
	case VariantCoach:
		if r.Coach == nil {
			return nil, errors.New("coach result missing for coach variant")
		}
		out["analysis"] = r.Coach.Analysis
		out["plan"] = r.Coach.Plan
	case VariantProfile:
		if r.Profile == nil {
			return nil, errors.New("profile result missing for profile variant")
		}
		out["profile"] = r.Profile.Profile
		if r.Profile.Description != "" {
			out["description"] = r.Profile.Description
		}
	default:
		return nil, errors.New("unknown analysis variant")
	}
	if r.Fallback {
		out["fallback"] = true
	}
	return json.Marshal(out)
}
