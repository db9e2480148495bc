package entity

// View is what the presentation layer renders.
type View struct {
	Records     []DisplayRecord `json:"records"`
	CompactMode bool            `json:"compactMode"`
	// Error is the last user-visible fetch failure, cleared by the next success.
	Error string `json:"error,omitempty"`
}
