package constants

type (
	APIStatus     string
	SessionPrefix string
	LookupOutcome string
)

const (
	APIStatusOk            APIStatus = "ok"
	APIStatusDown          APIStatus = "down"
	APIStatusMisconfigured APIStatus = "misconfigured"
)

const (
	SessionPrefixUI SessionPrefix = "ui_session:"

	SessionCookieName  = "flightcal_session"
	LanguageCookieName = "lang_preference"
)

const (
	LookupOutcomeFound    LookupOutcome = "found"
	LookupOutcomeNotFound LookupOutcome = "not_found"
	LookupOutcomeFailed   LookupOutcome = "failed"
)
