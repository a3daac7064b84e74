package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// FakeRegion is an in-process control plane serving the identity endpoint
// and the capability probes over TLS with a self-signed certificate.
type FakeRegion struct {
	Server *httptest.Server

	mu          sync.Mutex
	username    string
	password    string
	tenant      string
	projectID   string
	token       string
	kubernetes  bool
	kvm         bool
	kvmDelay    time.Duration
	hostCount   int
	hostsStatus int
	hostsBody   string

	authCalls atomic.Int32
}

// NewFakeRegion starts a region that accepts admin/secret on tenant service
// and answers none of the capability probes.
func NewFakeRegion() *FakeRegion {
	f := &FakeRegion{
		username:    "admin",
		password:    "secret",
		tenant:      "service",
		projectID:   "project-1234",
		token:       "token-abcd",
		hostsStatus: http.StatusOK,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/keystone/v3/auth/tokens", f.handleAuth)
	mux.HandleFunc("/qbert/v3/", f.handleQbert)
	mux.HandleFunc("/credsmanager", f.handleCredsmanager)
	mux.HandleFunc("/resmgr/v1/hosts", f.handleHosts)
	f.Server = httptest.NewTLSServer(mux)

	return f
}

func (f *FakeRegion) URL() string { return f.Server.URL }

func (f *FakeRegion) Close() { f.Server.Close() }

func (f *FakeRegion) Credentials() (username, password, tenant string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.username, f.password, f.tenant
}

func (f *FakeRegion) Session() (projectID, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projectID, f.token
}

func (f *FakeRegion) AuthCalls() int { return int(f.authCalls.Load()) }

func (f *FakeRegion) WithKubernetes() *FakeRegion {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kubernetes = true
	return f
}

func (f *FakeRegion) WithKVM() *FakeRegion {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kvm = true
	return f
}

// WithKVMDelay makes the credentials manager answer only after d.
func (f *FakeRegion) WithKVMDelay(d time.Duration) *FakeRegion {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kvmDelay = d
	return f
}

func (f *FakeRegion) WithHostCount(n int) *FakeRegion {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hostCount = n
	return f
}

// WithHostsResponse replaces the host listing with a raw status and body.
func (f *FakeRegion) WithHostsResponse(status int, body string) *FakeRegion {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hostsStatus = status
	f.hostsBody = body
	return f
}

func (f *FakeRegion) handleAuth(w http.ResponseWriter, r *http.Request) {
	f.authCalls.Add(1)

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Auth struct {
			Identity struct {
				Password struct {
					User struct {
						Name     string `json:"name"`
						Password string `json:"password"`
					} `json:"user"`
				} `json:"password"`
			} `json:"identity"`
			Scope struct {
				Project struct {
					Name string `json:"name"`
				} `json:"project"`
			} `json:"scope"`
		} `json:"auth"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	user := req.Auth.Identity.Password.User
	if user.Name != f.username || user.Password != f.password || req.Auth.Scope.Project.Name != f.tenant {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error": {"code": 401, "title": "Unauthorized"}}`)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Subject-Token", f.token)
	w.WriteHeader(http.StatusCreated)
	_, _ = fmt.Fprintf(w, `{"token": {"project": {"id": %q, "name": %q}}}`, f.projectID, f.tenant)
}

func (f *FakeRegion) authorized(r *http.Request) bool {
	return r.Header.Get("X-Auth-Token") == f.token
}

func (f *FakeRegion) handleQbert(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if !f.kubernetes || r.URL.Path != fmt.Sprintf("/qbert/v3/%s/nodes", f.projectID) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = fmt.Fprint(w, "[]")
}

func (f *FakeRegion) handleCredsmanager(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	delay := f.kvmDelay
	ok := f.kvm && f.authorized(r)
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	_, _ = fmt.Fprint(w, "{}")
}

func (f *FakeRegion) handleHosts(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.authorized(r) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if f.hostsBody != "" {
		w.WriteHeader(f.hostsStatus)
		_, _ = fmt.Fprint(w, f.hostsBody)
		return
	}

	hosts := make([]string, 0, f.hostCount)
	for i := range f.hostCount {
		hosts = append(hosts, fmt.Sprintf(`{"id": "host-%d"}`, i))
	}
	w.WriteHeader(f.hostsStatus)
	_, _ = fmt.Fprintf(w, "[%s]", strings.Join(hosts, ","))
}
