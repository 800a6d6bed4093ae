package httputil

// Machine-readable error codes returned alongside error messages.
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"

	CodeUsernameRequired   = "USERNAME_REQUIRED"
	CodeUsernameTooShort   = "USERNAME_TOO_SHORT"
	CodeInvalidEmailFormat = "INVALID_EMAIL_FORMAT"
	CodePasswordRequired   = "PASSWORD_REQUIRED"
	CodePasswordTooShort   = "PASSWORD_TOO_SHORT"
	CodeUsernameTaken      = "USERNAME_TAKEN"
	CodeEmailTaken         = "EMAIL_TAKEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"

	CodeInvalidAuthHeader  = "INVALID_AUTH_HEADER"
	CodeMissingAuth        = "MISSING_AUTH"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidTokenUserID = "INVALID_TOKEN_USER_ID"

	CodeInvalidUserID     = "INVALID_USER_ID"
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeNoFieldsToUpdate  = "NO_FIELDS_TO_UPDATE"
	CodeSearchRequired    = "SEARCH_REQUIRED"
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeUnsupportedUpload = "UNSUPPORTED_FILE_TYPE"

	CodeTaskNotFound  = "TASK_NOT_FOUND"
	CodeInvalidTask   = "INVALID_TASK"
	CodeTitleRequired = "TITLE_REQUIRED"
	CodeOwnerRequired = "OWNER_REQUIRED"
	CodeInvalidTaskID = "INVALID_TASK_ID"

	CodeFollowNotFound   = "FOLLOW_NOT_FOUND"
	CodeSelfFollow       = "SELF_FOLLOW"
	CodeAlreadyFollowing = "ALREADY_FOLLOWING"
	CodeFollowIDsMissing = "FOLLOW_IDS_REQUIRED"
)
