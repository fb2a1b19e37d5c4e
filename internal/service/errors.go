package service

import "errors"

// Sentinel errors surfaced to the page layer. Chain-level sentinels
// (rejection, revert, not-deployed) pass through wrapped and are matched with
// errors.Is against the chain package.
var (
	// ErrNotRegistered indicates the account has no profile document yet.
	ErrNotRegistered = errors.New("account is not registered")
	// ErrAlreadyRegistered indicates the account already has a profile
	// document; registration must not overwrite it.
	ErrAlreadyRegistered = errors.New("account is already registered")
	// ErrBadCredentials indicates the username/password pair does not match
	// the stored profile document.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrProjectName indicates a project name outside the 8..30 character
	// range.
	ErrProjectName = errors.New("project name must be 8 to 30 characters")
	// ErrProjectNameTaken indicates a project with that name already exists.
	ErrProjectNameTaken = errors.New("project name is already taken")
	// ErrProjectNotFound indicates the requested project id does not exist
	// or is not approved for public view.
	ErrProjectNotFound = errors.New("project not found")
	// ErrNotOwner indicates a project mutation reserved for its owner.
	ErrNotOwner = errors.New("caller does not own this project")
)
