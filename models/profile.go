package models

// Profile is the content-addressed account document stored off-chain.
// The on-chain hash-storage contract holds only its content hash; the body
// lives on the content network and is replaced wholesale on every write
// (there are no partial updates).
type Profile struct {
	// Username is the unique display name chosen at registration.
	Username string `json:"username"`

	// Email is an optional contact address shown in the admin user list.
	Email string `json:"email,omitempty"`

	// Firstname and Lastname are optional real-name fields.
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`

	// Password is the login credential, stored as written by the original
	// registration flow. The document is readable by anyone holding the
	// hash; treat membership here as identification, not as a secret.
	Password string `json:"password"`

	// State and City are optional location fields.
	State string `json:"state,omitempty"`
	City  string `json:"city,omitempty"`
}

// Account pairs a wallet address with its resolved profile document, as
// listed on the admin users page. Profile is nil when the document cannot be
// resolved.
type Account struct {
	Address string
	Profile *Profile
}

// Identity is the resolved authorization state of the active wallet account.
// It is recomputed from session + chain + content store on every page load;
// nothing here is trusted across loads.
type Identity struct {
	// Address is the wallet-supplied account address, immutable per session.
	Address string

	// LoggedIn is true only when the local session is fresh and the address
	// has a stored content hash on-chain.
	LoggedIn bool

	// HasProfile reports whether the address has a stored content hash.
	// It may be true while Profile is nil when the off-chain document is
	// missing or undecodable.
	HasProfile bool

	// Profile is the decoded account document, or nil when unavailable.
	Profile *Profile

	// Admin reports membership of the operator-configured allow-list.
	Admin bool
}

// DisplayName returns the profile username when available, falling back to
// the account address.
func (i Identity) DisplayName() string {
	if i.Profile != nil && i.Profile.Username != "" {
		return i.Profile.Username
	}
	return i.Address
}
