package response

const (
	// MessageSuccess is the message used for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500 responses.
	InternalServerErrorCode = 500
)
