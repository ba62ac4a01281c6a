package message

const (
	InvalidInput       = "Invalid input."
	InvalidUser        = "Invalid email/password."
	Unauthorized       = "Not authenticated."
	Forbidden          = "Not enough permissions."
	ServiceUnavailable = "Authentication service unavailable."
	NotFound           = "Not found."
	RequestTimeout     = "Request cancelled or timeout."
	ServerError        = "An unexpected error occurred."
	RegisterSuccess    = "Registration successful."
	LoginSuccess       = "Logged in successfully."
	UploadSuccess      = "File uploaded."
	DeleteSuccess      = "Deleted."
)
