package admin

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
)

//go:embed static
var staticFS embed.FS

// StaticHandler serves the embedded scripts and styles of the admin screens.
// It expects to be mounted behind http.StripPrefix so paths arrive without the mount prefix.
func StaticHandler() http.Handler {
	root, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("admin: failed to get static sub-filesystem: " + err.Error())
	}

	fileServer := http.FileServer(http.FS(root))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cleanPath := strings.TrimPrefix(r.URL.Path, "/")
		if cleanPath == "" || strings.HasSuffix(cleanPath, "/") {
			http.NotFound(w, r)
			return
		}

		f, err := root.Open(cleanPath)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		f.Close()

		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
