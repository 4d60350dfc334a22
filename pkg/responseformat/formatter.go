package responseformat

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Content types the formatter can produce
const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgPack = "application/x-msgpack"
)

// Formatter handles encoding and writing responses in JSON or MessagePack format
type Formatter struct{}

// NewFormatter creates a new response formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// WantsMsgPack reports whether the client asked for MessagePack, either with
// format=msgpack or an Accept header naming it. JSON is the default.
func (f *Formatter) WantsMsgPack(req *http.Request) bool {
	if req.URL.Query().Get("format") == "msgpack" {
		return true
	}
	return strings.Contains(req.Header.Get("Accept"), ContentTypeMsgPack)
}

// WriteResponse writes data with the given status code in the format the
// request asked for
func (f *Formatter) WriteResponse(w http.ResponseWriter, req *http.Request, status int, data any) error {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	if f.WantsMsgPack(req) {
		return f.writeMsgPack(w, status, data)
	}
	return f.writeJSON(w, status, data)
}

// ErrorBody is the payload of every error response
type ErrorBody struct {
	Error     string `json:"error"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Details   string `json:"details,omitempty"`
}

// WriteError writes an ErrorBody with the given status code
func (f *Formatter) WriteError(w http.ResponseWriter, req *http.Request, status int, message string, err error) error {
	body := ErrorBody{
		Error:     message,
		Status:    status,
		Timestamp: time.Now().Unix(),
	}
	if err != nil {
		body.Details = err.Error()
	}
	return f.WriteResponse(w, req, status, body)
}

func (f *Formatter) writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func (f *Formatter) writeMsgPack(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", ContentTypeMsgPack)
	w.WriteHeader(status)
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json") // Use json tags for MessagePack
	return encoder.Encode(data)
}
