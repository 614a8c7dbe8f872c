package backend

import "fmt"

// AuthError is returned when the auth collaborator rejects an operation.
// Message is the collaborator's text, verbatim, so the UI can surface it.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// RepositoryError is returned for any persistence call failure. No partial
// results accompany one.
type RepositoryError struct {
	Op      string
	Message string
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("backend: %s: %s", e.Op, e.Message)
}
