package workflow

import "errors"

// Rejection is a local error raised before anything is sent to the service.
// Rejections are not retried; the user corrects the input and resubmits.
type Rejection struct {
	Reason  string
	message string
}

func (e *Rejection) Error() string { return e.message }

var (
	ErrMissingFile           = &Rejection{Reason: "missing_file", message: "no resume file selected"}
	ErrNoTargetSelected      = &Rejection{Reason: "no_target_selected", message: "no job selected to match against"}
	ErrGuestNotPermitted     = &Rejection{Reason: "guest_not_permitted", message: "uploads are available for registered users only; login or register first"}
	ErrNotAuthenticated      = &Rejection{Reason: "not_authenticated", message: "login or register to submit"}
	ErrAlreadyInFlight       = &Rejection{Reason: "already_in_flight", message: "a submission is already in flight"}
	ErrMissingJobDescription = &Rejection{Reason: "missing_job_description", message: "no job description provided"}
	ErrNoResumesSelected     = &Rejection{Reason: "no_resumes_selected", message: "no resumes selected"}
	ErrNoJobContext          = &Rejection{Reason: "no_job_context", message: "no job bound to the ranking"}
)

func rejectionReason(err error) string {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Reason
	}
	return "unknown"
}
