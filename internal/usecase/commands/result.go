package commands

import "invoice-admin/internal/usecase/forms"

// MutationResult is the per-operation outcome of the mutation pipeline.
// Exactly one field is set: Form when the caller must re-render (validation
// errors or the opaque storage-failure message), Redirect when the write
// succeeded and navigation supersedes any other handling.
type MutationResult struct {
	Form     *forms.State
	Redirect string
}
