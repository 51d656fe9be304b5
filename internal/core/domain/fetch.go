package domain

// FetchState classifies the outcome of fetching a remote image.
type FetchState uint8

const (
	// FetchOK indicates the image bytes were retrieved.
	FetchOK FetchState = iota
	// FetchNotFound indicates the artifact does not exist at the URL.
	FetchNotFound
	// FetchTransient indicates a temporary failure (network, 5xx).
	FetchTransient
)

// FetchResult is the explicit result of an image fetch. Callers decide
// fail-soft versus fail-hard from the state instead of a broad error catch;
// cell rendering substitutes a placeholder for anything but FetchOK.
type FetchResult struct {
	// State classifies the outcome.
	State FetchState
	// Data holds the raw image bytes (only valid when State is FetchOK).
	Data []byte
	// Err is the underlying cause for non-OK states, for logging.
	Err error
}

// OK reports whether the fetch produced usable image bytes.
func (r FetchResult) OK() bool {
	return r.State == FetchOK && len(r.Data) > 0
}
