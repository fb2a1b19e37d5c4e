package models

import "math/big"

// Project is the client-side view of one crowdfunding project, assembled
// field by field from the project ledger contract. Amounts are in the token's
// smallest unit; use [TokenQuote] for display conversion.
type Project struct {
	// ID is the sequential, contract-assigned project identifier.
	ID int64

	// OwnerAddress is the account that created the project.
	OwnerAddress string

	// OwnerName is the owner's username resolved through the hash-storage
	// contract and the content store. Empty when the owner document cannot
	// be resolved; the project is still rendered.
	OwnerName string

	// Name is the on-chain project name.
	Name string

	// Goal is the funding target in smallest units.
	Goal *big.Int

	// Balance is the funding raised so far in smallest units. On "funded
	// projects" views this carries the caller's funder balance instead.
	Balance *big.Int

	// FunderBalance is the caller's own stake, when the view fetched it.
	FunderBalance *big.Int

	// Approved gates public visibility and funding; set by an admin.
	Approved bool

	// Open is false once the owner has closed the project.
	Open bool

	// MetadataHash is the content hash of the optional metadata document.
	MetadataHash string

	// Metadata is the decoded metadata document, nil when absent.
	Metadata *ProjectMetadata
}

// PercentFunded returns Balance/Goal as a truncated integer percentage.
// A zero or missing goal yields 0.
func (p Project) PercentFunded() int64 {
	if p.Goal == nil || p.Balance == nil || p.Goal.Sign() == 0 {
		return 0
	}
	pct := new(big.Int).Mul(p.Balance, big.NewInt(100))
	pct.Quo(pct, p.Goal)
	return pct.Int64()
}

// ProjectMetadata is the optional content-addressed document a project owner
// can attach to a project (category, pitch, image, progress updates).
type ProjectMetadata struct {
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Updates     []ProjectUpdate `json:"updates,omitempty"`
}

// ProjectUpdate is one progress note published by the project owner.
type ProjectUpdate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// PostedAt is a unix timestamp in milliseconds, matching the session
	// slot's time base.
	PostedAt int64 `json:"postedAt"`
}
