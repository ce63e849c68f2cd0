package api

import (
	"log"
	"net/http"
)

// An Api serves a directory of rendered animations (html writer output) for
// previewing in a browser.
type Api struct {
	dir  string
	addr string
}

// NewApi creates a preview server for the given directory.
func NewApi(dir, addr string) *Api {
	a := new(Api)
	a.dir = dir
	a.addr = addr
	return a
}

// Serve blocks serving the directory.
func (a *Api) Serve() error {
	fs := http.FileServer(http.Dir(a.dir))
	mux := http.NewServeMux()
	mux.Handle("/", fs)

	log.Printf("Serving %s on %s", a.dir, a.addr)
	return http.ListenAndServe(a.addr, mux)
}
