package analysis

import "context"

// Model port (interface to the hosted generative model)
type Model interface {
	// Analyze sends the content (plus optional image) to the model and
	// returns its raw text response, expected to contain JSON.
	Analyze(ctx context.Context, content string, image []byte, mime string) (string, error)
}

// PageFetcher port (interface for resolving the URL variant to text)
type PageFetcher interface {
	PageText(ctx context.Context, url string) (string, error)
}
