package errorz

import "errors"

// NotFound is the generic storage-level signal: no VALID row matched the
// lookup. Services map it to the operation-specific error below.
var NotFound = errors.New("record not found")

var (
	FailedToLogin      = errors.New("failed to login")
	DuplicatedEmail    = errors.New("duplicated email")
	DuplicatedNickname = errors.New("duplicated nickname")
	AccountNotFound    = errors.New("account not found")
	AccountNotValid    = errors.New("account not valid")
	AreaNotFound       = errors.New("area not found")
	SportsNotFound     = errors.New("sports not found")
	ExtraNotFound      = errors.New("extra not found")
	ClubNotFound       = errors.New("club not found")
)
