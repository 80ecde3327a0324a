package utils

// Application constants
const (
	// Application name
	AppName = "233Plug"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default currency for prices and wallet balances
	DefaultCurrency = "GHS"

	// Default pagination limit
	DefaultPaginationLimit = 20

	// Maximum pagination limit
	MaxPaginationLimit = 100

	// Minimum name length
	MinNameLength = 2

	// Maximum name length
	MaxNameLength = 50

	// Maximum product name length on a request
	MaxProductNameLength = 200

	// Maximum description length
	MaxDescriptionLength = 2000
)

// Error messages
const (
	ErrInvalidToken   = "Invalid or expired token"
	ErrUnauthorized   = "Unauthorized access"
	ErrForbidden      = "Access forbidden"
	ErrInvalidEmail   = "Invalid email format"
	ErrInvalidPhone   = "Invalid phone number format"
	ErrRecordNotFound = "Record not found"
	ErrDuplicateEntry = "Duplicate entry"
	ErrInternalServer = "Internal server error"
	ErrCheckoutFailed = "Checkout failed"
)

// Success messages
const (
	MsgCreateSuccess = "Created successfully"
	MsgUpdateSuccess = "Updated successfully"
	MsgDeleteSuccess = "Deleted successfully"
)
