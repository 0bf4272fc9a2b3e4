package book

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

// Is matches by code, so wrapped responses with extra detail in the message still match.
func (e ErrResponse) Is(target error) bool {
	t, ok := target.(ErrResponse)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

var ErrResponseInvalidAction = ErrResponse{100, "unknown action. Must be one of: create, insert, update, delete or replace."}
var ErrResponseFromRepository = ErrResponse{108, "error from repository: "}
var ErrResponseRequestTimeout = ErrResponse{109, "context deadline exceeded"}
