package constants

const (
	// ContextKeyUserID is the key under which the signed-in user id is kept,
	// both in the session and on the gin context.
	ContextKeyUserID = "user_id"
	// ContextKeyLocalizer holds the request's *i18n.Localizer.
	ContextKeyLocalizer = "localizer"
	// ContextKeyRequestID holds the request id assigned by the logging middleware.
	ContextKeyRequestID = "request_id"

	SessionCookieName = "task_session"
	SessionMaxAge     = 86400 * 7

	MinPasswordLength = 3
	MaxNameLength     = 255
	MinEmailLength    = 6
	MaxEmailLength    = 127

	MaxDraftTasks = 20
)

// Flash kinds.
const (
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashError   = "error"
)
