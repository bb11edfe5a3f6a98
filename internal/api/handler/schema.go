package handler

// successResponse is the envelope returned by every mutating endpoint.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// failureResponse reports a failed mutation; Error is surfaced verbatim to
// the panel's notification channel.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func ok(message string) successResponse {
	return successResponse{Success: true, Message: message}
}

func fail(err error) failureResponse {
	return failureResponse{Success: false, Error: err.Error()}
}
