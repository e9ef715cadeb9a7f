package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

// LoadResumeProfile loads a résumé (or full profile) from a JSON file
func LoadResumeProfile(path string) (*types.ResumeProfile, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeResumeProfile(content)
}

// LoadIdealProfile loads an ideal profile from a JSON file
func LoadIdealProfile(path string) (*types.IdealProfile, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeIdealProfile(content)
}

// DecodeResumeProfile validates raw JSON against the résumé schema and
// decodes it.
func DecodeResumeProfile(data []byte) (*types.ResumeProfile, error) {
	if err := schemas.ValidateDocument(schemas.ResumeProfile, data); err != nil {
		return nil, &InvalidProfileError{Kind: "resume profile", Cause: err}
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal resume profile",
			Cause:   err,
		}
	}
	return &profile, nil
}

// DecodeIdealProfile validates raw JSON against the ideal profile schema,
// decodes it and checks the cross-field rules the schema cannot express.
func DecodeIdealProfile(data []byte) (*types.IdealProfile, error) {
	if err := schemas.ValidateDocument(schemas.IdealProfile, data); err != nil {
		return nil, &InvalidProfileError{Kind: "ideal profile", Cause: err}
	}

	var profile types.IdealProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal ideal profile",
			Cause:   err,
		}
	}

	if err := profile.Validate(); err != nil {
		return nil, &InvalidProfileError{Kind: "ideal profile", Cause: err}
	}
	return &profile, nil
}

func readFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	return content, nil
}
