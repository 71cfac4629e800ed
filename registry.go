package sasshost

import (
	"fmt"
	"net/url"
	"sync"
	"sync/atomic"
)

// requestID identifies a request inside a compilation: canonicalize,
// import, file-import and function-call messages all carry one, and the
// base importer id shares the same numbering space (§3, §4.3).
type requestID = uint32

// compilationID identifies a compilation; 0 is reserved for
// non-compilation messages (§3).
type compilationID = uint32

// baseImporterID is both the first request id handed out and the first
// importer id the compiler sees, per §3 ("Allocated from a shared
// monotonic counter starting at 4000; base-importer-ID also 4000").
const baseImporterID uint32 = 4000

// idCounter is the process-wide monotonic id source §9 calls for: "Global
// monotonic ID counters become a process-wide atomic integer (initialized
// to 4000); no cross-test reset is specified."
var idCounter atomic.Uint32

func init() {
	idCounter.Store(baseImporterID)
}

func nextID() uint32 {
	return idCounter.Add(1) - 1
}

// requestRegistry maps a compilation id to its live request. Its methods
// take the registry's own mutex, so callers need not hold the Host's
// mutex.
type requestRegistry struct {
	mu       sync.Mutex
	requests map[compilationID]request
}

func newRequestRegistry() *requestRegistry {
	return &requestRegistry{requests: make(map[compilationID]request)}
}

func (r *requestRegistry) insert(id compilationID, req request) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[id] = req
}

func (r *requestRegistry) remove(id compilationID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.requests, id)
}

func (r *requestRegistry) get(id compilationID) (request, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	return req, ok
}

func (r *requestRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

// cancelAll implements §4.2's cancel-all: every live request completes
// with err, and the registry is emptied.
func (r *requestRegistry) cancelAll(err error) {
	r.mu.Lock()
	reqs := make([]request, 0, len(r.requests))
	for id, req := range r.requests {
		reqs = append(reqs, req)
		delete(r.requests, id)
	}
	r.mu.Unlock()

	for _, req := range reqs {
		req.cancel(err)
	}
}

// validateURL rejects malformed URLs on ImportRequest per §4.3: "URL
// validation on ImportRequest — malformed URL is a protocol error."
func validateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("malformed URL %q: %w", raw, err)
	}
	return u, nil
}
