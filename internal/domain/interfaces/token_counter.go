package interfaces

// TokenCounter estimates the number of model tokens in a piece of text.
type TokenCounter interface {
	Count(text string) int
}
