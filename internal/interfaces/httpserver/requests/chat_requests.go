package requests

// StreamRequest is the body of POST /stream. Fields are pointers so that a
// present but empty value is accepted while a missing one is rejected.
type StreamRequest struct {
	Session *string  `json:"session" binding:"required" example:"5f0c2c1e-1d2b-4a37-9e8e-3f1b2d9f8a10"`
	Message *string  `json:"message" binding:"required" example:"Hello"`
	Files   []string `json:"files" binding:"required"`
}
