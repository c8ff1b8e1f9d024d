package mailer

// EmailJob is the JSON payload put on the RabbitMQ email queue. The
// producer renders the full HTML body up front; the worker only delivers.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}
