package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadPath is where NewRouter mounts the live reload websocket.
const ReloadPath = "/_markup/reload"

// ReloadMessage is sent to connected browsers.
type ReloadMessage struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// LiveReload tells connected browsers to reload after a page changes.
type LiveReload struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
}

// NewLiveReload creates a live reload hub with no clients.
func NewLiveReload() *LiveReload {
	return &LiveReload{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Development only: the preview page may be served from any host.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and keeps the connection until the browser
// goes away.
func (lr *LiveReload) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := lr.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	lr.mu.Lock()
	lr.clients[conn] = struct{}{}
	lr.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	lr.drop(conn)
}

// NotifyReload asks every client to reload. path is informational.
func (lr *LiveReload) NotifyReload(path string) {
	data, err := json.Marshal(ReloadMessage{Type: "reload", Path: path})
	if err != nil {
		return
	}

	lr.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(lr.clients))
	for c := range lr.clients {
		clients = append(clients, c)
	}
	lr.mu.RUnlock()

	for _, c := range clients {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			lr.drop(c)
		}
	}
}

// ClientCount returns the number of connected browsers.
func (lr *LiveReload) ClientCount() int {
	lr.mu.RLock()
	defer lr.mu.RUnlock()
	return len(lr.clients)
}

// Close disconnects every client.
func (lr *LiveReload) Close() {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	for c := range lr.clients {
		_ = c.Close()
		delete(lr.clients, c)
	}
}

func (lr *LiveReload) drop(c *websocket.Conn) {
	lr.mu.Lock()
	_, ok := lr.clients[c]
	delete(lr.clients, c)
	lr.mu.Unlock()
	if ok {
		_ = c.Close()
	}
}

// reloadScript reconnects with backoff and reloads on any "reload" message.
const reloadScript = `<script data-markup-reload>(function(){` +
	`var d=500;function c(){var p=location.protocol==='https:'?'wss:':'ws:';` +
	`var ws=new WebSocket(p+'//'+location.host+'` + ReloadPath + `');` +
	`ws.onopen=function(){d=500};` +
	`ws.onmessage=function(e){try{if(JSON.parse(e.data).type==='reload')location.reload()}catch(_){}};` +
	`ws.onclose=function(){setTimeout(c,d);d=Math.min(d*2,10000)}}c()})();</script>`

// InjectScript returns page with the reload script inserted before </head>,
// or before </body> when there is no head. Pages that already carry the
// script are returned unchanged.
func InjectScript(page []byte) []byte {
	if bytes.Contains(page, []byte("data-markup-reload")) {
		return page
	}
	for _, marker := range []string{"</head>", "</body>"} {
		if i := bytes.Index(page, []byte(marker)); i >= 0 {
			out := make([]byte, 0, len(page)+len(reloadScript))
			out = append(out, page[:i]...)
			out = append(out, reloadScript...)
			return append(out, page[i:]...)
		}
	}
	return append(append([]byte(nil), page...), reloadScript...)
}

// Middleware injects the reload script into HTML responses from next.
func (lr *LiveReload) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &bufferedResponse{header: w.Header(), status: http.StatusOK}
		next.ServeHTTP(rec, r)

		body := rec.body.Bytes()
		if len(body) > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
			body = InjectScript(body)
			w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		}
		if r.Method == http.MethodHead {
			w.Header().Del("Content-Length")
		}
		w.WriteHeader(rec.status)
		_, _ = w.Write(body)
	})
}

type bufferedResponse struct {
	header http.Header
	status int
	body   bytes.Buffer
	wrote  bool
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) {
	if b.wrote {
		return
	}
	b.status = status
	b.wrote = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.wrote = true
	return b.body.Write(p)
}
