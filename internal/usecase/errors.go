package usecase

// Error codes returned across the public interface boundary.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeValidation      = "VALIDATION_ERROR"
	CodeLeadNotFound    = "LEAD_NOT_FOUND"
	CodePersistence     = "PERSISTENCE_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func errUnauthenticated() *DomainError {
	return &DomainError{Code: CodeUnauthenticated, Message: "not authenticated"}
}

// persistenceError surfaces the store failure message verbatim.
func persistenceError(err error) *TechnicalError {
	return &TechnicalError{Code: CodePersistence, Message: err.Error()}
}
