package models

import "encoding/json"

// DigestPreferences controls which sections the email digest includes.
// All options default to enabled.
type DigestPreferences struct {
	IncludeAbstracts bool `json:"includeAbstracts"`
	IncludeInsights  bool `json:"includeInsights"`
	IncludeAuthors   bool `json:"includeAuthors"`
}

func DefaultPreferences() DigestPreferences {
	return DigestPreferences{
		IncludeAbstracts: true,
		IncludeInsights:  true,
		IncludeAuthors:   true,
	}
}

// partialPreferences distinguishes absent keys from explicit false.
type partialPreferences struct {
	IncludeAbstracts *bool `json:"includeAbstracts"`
	IncludeInsights  *bool `json:"includeInsights"`
	IncludeAuthors   *bool `json:"includeAuthors"`
}

// DecodePreferences merges a stored (possibly partial) preferences record
// over the defaults. Missing keys keep their default, unknown keys are
// ignored. A payload that is not a JSON object yields the defaults and an
// error.
func DecodePreferences(data []byte) (DigestPreferences, error) {
	prefs := DefaultPreferences()

	var partial partialPreferences
	if err := json.Unmarshal(data, &partial); err != nil {
		return prefs, err
	}
	partial.applyTo(&prefs)
	return prefs, nil
}

// MergePreferences overlays the fields present in data onto base. Used when a
// settings update carries only the toggles that changed.
func MergePreferences(base DigestPreferences, data []byte) (DigestPreferences, error) {
	var partial partialPreferences
	if err := json.Unmarshal(data, &partial); err != nil {
		return base, err
	}
	partial.applyTo(&base)
	return base, nil
}

func (p *partialPreferences) applyTo(prefs *DigestPreferences) {
	if p.IncludeAbstracts != nil {
		prefs.IncludeAbstracts = *p.IncludeAbstracts
	}
	if p.IncludeInsights != nil {
		prefs.IncludeInsights = *p.IncludeInsights
	}
	if p.IncludeAuthors != nil {
		prefs.IncludeAuthors = *p.IncludeAuthors
	}
}
