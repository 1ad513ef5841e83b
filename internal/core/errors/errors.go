package errors

const (
	HttpInternalError      = "internal_error"
	HttpInvalidJsonError   = "invalid_json"
	HttpInvalidQueryError  = "invalid_query"
	HttpUnknownSourceError = "unknown_source"
	HttpUnbucketableError  = "unbucketable_case"
	HttpDuplicateCaseError = "duplicate_case"
	HttpNotFoundError      = "not_found"
)

// ErrorResponse is the error response body shared by every API route.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
