package ipfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeProfile verifies a well-formed document round-trips.
func TestDecodeProfile(t *testing.T) {
	data := []byte(`{
		"username": "alice",
		"email": "alice@example.com",
		"firstname": "Alice",
		"lastname": "Doe",
		"password": "hunter2",
		"state": "CA",
		"city": "Oakland"
	}`)

	profile, err := DecodeProfile(data)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
}

// TestDecodeProfile_Tolerant verifies malformed and empty bytes are "no
// document", never an error.
func TestDecodeProfile_Tolerant(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"not json", []byte("garbage bytes from the wrong hash")},
		{"wrong shape", []byte(`[1,2,3]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := DecodeProfile(tt.data)
			assert.NoError(t, err)
			assert.Nil(t, profile)
		})
	}
}

// TestDecodeMetadata verifies update lists survive decoding.
func TestDecodeMetadata(t *testing.T) {
	data := []byte(`{
		"category": "art",
		"description": "a mural",
		"imageUrl": "https://example.com/mural.png",
		"updates": [{"title": "kickoff", "body": "we started", "postedAt": 1724800000000}]
	}`)

	metadata, err := DecodeMetadata(data)
	require.NoError(t, err)
	require.NotNil(t, metadata)
	assert.Equal(t, "art", metadata.Category)
	require.Len(t, metadata.Updates, 1)
	assert.Equal(t, "kickoff", metadata.Updates[0].Title)
}

// TestDecodeMetadata_Tolerant mirrors the profile tolerance.
func TestDecodeMetadata_Tolerant(t *testing.T) {
	metadata, err := DecodeMetadata([]byte("{broken"))
	assert.NoError(t, err)
	assert.Nil(t, metadata)
}
