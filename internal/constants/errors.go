package constants

import "errors"

// Static errors shared by the CLI commands, declared once for err113
// compliance.
var (
	ErrTableSlugRequired    = errors.New("table slug is required")
	ErrRecordIDRequired     = errors.New("record id is required")
	ErrPageSlugRequired     = errors.New("page slug is required")
	ErrQueryTermRequired    = errors.New("a query term is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrTokenRequired        = errors.New("a session token is required")
	ErrNoEndpointConfigured = errors.New("no API endpoint configured")
	ErrNoAPIKeyConfigured   = errors.New("no API key configured")
	ErrUnknownOutputFormat  = errors.New("unknown output format")
)
