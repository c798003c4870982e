package post

// Warning is a per-platform advisory attached to a successful
// validation.
type Warning struct {
	Platform string `json:"platform"`
	Code     int    `json:"code,omitempty"`
	Message  string `json:"message"`
}

// ValidationResult is the interpreted outcome of a validation call.
// Stage reports where the compose session stands after the call: an
// accepted draft advances to review, a rejected one stays in setup.
type ValidationResult struct {
	Accepted bool      `json:"accepted"`
	Message  string    `json:"message,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
	Stage    Stage     `json:"stage,omitempty"`
}

// PostID identifies a post created on one platform.
type PostID struct {
	Platform string `json:"platform"`
	ID       string `json:"id"`
	PostURL  string `json:"postUrl,omitempty"`
}

// PlatformError is one platform's publish failure.
type PlatformError struct {
	Platform string `json:"platform,omitempty"`
	Code     int    `json:"code,omitempty"`
	Message  string `json:"message"`
}

// PublishResult is the interpreted outcome of a publish call. A
// platform missing from PostIDs on success is a silent omission, not a
// failure; Errors is populated only on partial or full failure.
type PublishResult struct {
	Published bool            `json:"published"`
	PostIDs   []PostID        `json:"postIds,omitempty"`
	Errors    []PlatformError `json:"errors,omitempty"`
	Stage     Stage           `json:"stage,omitempty"`
}

const statusSuccess = "success"

// ValidateResponse is the wire shape of the validation endpoint.
type ValidateResponse struct {
	Status   string    `json:"status"`
	Message  string    `json:"message"`
	Warnings []Warning `json:"warnings"`
}

// Result interprets the wire response by its status discriminator.
func (r *ValidateResponse) Result() ValidationResult {
	if r.Status == statusSuccess {
		return ValidationResult{
			Accepted: true,
			Message:  r.Message,
			Warnings: r.Warnings,
		}
	}
	message := r.Message
	if message == "" {
		message = "validation failed"
	}
	return ValidationResult{Accepted: false, Message: message}
}

// PublishResponse is the wire shape of the publish endpoint. Failures
// arrive in one of two shapes: a flat errors list, or a posts list
// whose entries carry their own nested errors.
type PublishResponse struct {
	Status  string        `json:"status"`
	PostIDs []PostID      `json:"postIds"`
	Errors  []wireError   `json:"errors"`
	Posts   []wirePostErr `json:"posts"`
}

type wirePostErr struct {
	Errors []wireError `json:"errors"`
}

type wireError struct {
	Platform string `json:"platform"`
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Err      *struct {
		Message string `json:"message"`
	} `json:"err"`
}

func (e wireError) flatten() PlatformError {
	message := e.Message
	// The nested detail message is the most specific one when present.
	if e.Err != nil && e.Err.Message != "" {
		message = e.Err.Message
	}
	return PlatformError{
		Platform: e.Platform,
		Code:     e.Code,
		Message:  message,
	}
}

// Result normalizes whichever failure shape is present into a uniform
// per-platform error list. Absent both shapes, exactly one generic
// entry is produced.
func (r *PublishResponse) Result() PublishResult {
	if r.Status == statusSuccess {
		return PublishResult{
			Published: true,
			PostIDs:   r.PostIDs,
		}
	}

	var errs []PlatformError
	if len(r.Posts) > 0 {
		for _, p := range r.Posts {
			for _, e := range p.Errors {
				errs = append(errs, e.flatten())
			}
		}
	}
	if len(errs) == 0 {
		for _, e := range r.Errors {
			errs = append(errs, e.flatten())
		}
	}
	if len(errs) == 0 {
		errs = []PlatformError{{Message: "publish failed"}}
	}

	return PublishResult{Published: false, Errors: errs}
}
