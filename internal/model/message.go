package model

// OutboundMessage is built by the caller and only read while it is being sent.
type OutboundMessage struct {
	Body string
	To   []string
	From string
}
