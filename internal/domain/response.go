package domain

// Response is the standard mutation acknowledgement every write endpoint
// returns. Messages are user-facing (Spanish).
type Response struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func OK(message string) Response {
	return Response{Message: message, Success: true}
}
