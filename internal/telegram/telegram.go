package telegram

// Client is the messaging endpoint the relay delivers to. Every method
// targets the configured destination chat and returns an error on delivery
// failure; no response body is interpreted beyond that.
type Client interface {
	SendMessage(text string) error
	SendPhoto(path string, caption string) error
	SendVideo(path string, caption string) error
}
