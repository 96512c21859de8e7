package models

// SubmissionRequest is a contact form submission that passed field validation
type SubmissionRequest struct {
	SourceIP     string
	Name         string
	Email        string
	Body         string
	CaptchaToken string
}

// NotificationMessage is the email composed from a verified submission
type NotificationMessage struct {
	Subject string
	Body    string
	ReplyTo string // empty when the submitter supplied no address
}

// DataResponse is the success payload shape
type DataResponse struct {
	Data interface{} `json:"data"`
}
