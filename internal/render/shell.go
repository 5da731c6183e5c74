package render

import "net/http"

// Shell serves the static SPA entry document to interactive clients. The
// document is passed through unmodified; hydration happens client-side.
type Shell struct {
	path string
}

// NewShell creates a shell passthrough for the given entry document path.
func NewShell(path string) *Shell {
	return &Shell{path: path}
}

// Serve writes the entry document.
func (s *Shell) Serve(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.path)
}
