package core

// Client is one connected signaling channel as seen by the core layer.
// The Handle is assigned by the transport when the connection opens and
// is never reused after the connection closes.
type Client struct {
	Handle   string
	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}

	// done is closed by the hub when the client is unregistered,
	// stopping the command pump for this channel.
	done chan struct{}
}

// NewClient constructs a client with initialized channels. queueSize
// bounds the command and event queues; zero or negative picks the default.
func NewClient(handle string, queueSize int) *Client {
	if queueSize <= 0 {
		queueSize = 32
	}
	return &Client{
		Handle:   handle,
		Commands: make(chan *Command, queueSize),
		Events:   make(chan *Event, queueSize),
		Rooms:    make(map[string]struct{}),
		done:     make(chan struct{}),
	}
}
