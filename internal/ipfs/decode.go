package ipfs

import (
	"encoding/json"

	"github.com/cfdapp/crowdfund-client/models"
)

// DecodeProfile parses a profile document. Malformed or empty bytes yield
// (nil, nil): a document that cannot be read is the same as no document, so
// the caller can fall back to address-only display instead of failing the
// whole page.
func DecodeProfile(data []byte) (*models.Profile, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, nil
	}

	return &profile, nil
}

// DecodeMetadata parses a project metadata document with the same tolerance
// as [DecodeProfile].
func DecodeMetadata(data []byte) (*models.ProjectMetadata, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var metadata models.ProjectMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, nil
	}

	return &metadata, nil
}
