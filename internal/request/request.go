package request

// SendMessageRequest is the JSON body of POST /messages. The sender number and
// the Twilio account come from configuration.
type SendMessageRequest struct {
	To   string `json:"to" example:"+15005550007"`
	Body string `json:"body" example:"Your code is 123456"`
}
