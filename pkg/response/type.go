package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	BadRequestErrorCode     = 1
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Err is an error that knows its HTTP status.
type Err struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *Err) Error() string {
	return e.Message
}

// NewErr creates an Err with the given status, application code and message.
func NewErr(status, code int, message string) *Err {
	return &Err{StatusCode: status, Code: code, Message: message}
}
