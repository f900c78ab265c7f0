package apperrors

import "net/http"

// Predefined errors for the recurring failure modes of the API. Handlers and
// services return these directly so status codes and messages stay uniform.

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords. The two cases must be indistinguishable to the caller.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

// ErrEmailAlreadyExists rejects a registration against a taken email.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"User with this email already exists",
	http.StatusBadRequest,
)

// ErrMissingToken rejects requests without a bearer token.
var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"Authorization token required",
	http.StatusUnauthorized,
)

// ErrInvalidToken rejects requests whose token fails verification. A present
// but bad token is a 403, unlike the absent-token 401.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusForbidden,
)

// ErrInsufficientPermissions rejects non-admin access to admin operations.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Admin access required",
	http.StatusForbidden,
)

// ErrNoOrganization rejects organization-scoped operations by users without one.
var ErrNoOrganization = New(
	CodeForbidden,
	"organization",
	"User does not belong to an organization",
	http.StatusForbidden,
)

// ErrOrganizationMismatch rejects cross-organization access to user data.
var ErrOrganizationMismatch = New(
	CodeForbidden,
	"organization",
	"Users do not belong to the same organization",
	http.StatusForbidden,
)

// ErrNoFileProvided rejects uploads with an empty multipart payload.
var ErrNoFileProvided = New(
	CodeValidationFailed,
	"upload",
	"No file provided",
	http.StatusBadRequest,
)
