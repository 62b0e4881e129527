// Package torprobe detects a local Tor SOCKS proxy.
//
// Tor answers plain HTTP requests on its SOCKS port with a fixed error page,
// which makes it distinguishable from other SOCKS servers. The probe tries a
// short list of well-known ports once and reports the first one that
// answers like Tor.
package torprobe

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"time"
)

const (
	// DefaultHost is where a local Tor daemon listens.
	DefaultHost = "127.0.0.1"
	// DefaultTimeout bounds the connect and read on each port.
	DefaultTimeout = 100 * time.Millisecond
	// DefaultSignature is contained in Tor's reply to an HTTP request.
	DefaultSignature = "Tor is not an HTTP Proxy"

	maxResponse = 1024
)

// DefaultPorts are the Tor daemon and Tor Browser SOCKS ports.
var DefaultPorts = []int{9050, 9150}

// DefaultPayload is sent to each candidate port.
var DefaultPayload = []byte("GET\n")

// State is the lifecycle of a probe.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFound
	StateNotFound
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	case StateNotFound:
		return "not found"
	default:
		return "unknown"
	}
}

// Endpoint is a detected proxy address.
type Endpoint struct {
	Host string
	Port int
}

// String returns the endpoint in host:port form.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(e.Port))
}

// DialFunc opens a connection with a timeout.
type DialFunc func(network, address string, timeout time.Duration) (net.Conn, error)

// Probe scans candidate ports for a Tor proxy. A Probe runs at most once.
type Probe struct {
	Host      string
	Ports     []int
	Timeout   time.Duration
	Payload   []byte
	Signature string
	Dial      DialFunc
	Logger    *slog.Logger

	once   sync.Once
	mu     sync.Mutex
	state  State
	result *Endpoint
	done   chan struct{}
}

// New returns a probe with the default Tor ports and signature.
func New() *Probe {
	return &Probe{}
}

// Start runs the scan in a background goroutine. The returned channel
// receives the endpoint if one is found and is closed when the scan ends.
// Calls after the first return a channel that is already closed.
func (p *Probe) Start() <-chan Endpoint {
	ch := make(chan Endpoint, 1)
	started := false

	p.once.Do(func() {
		started = true
		p.mu.Lock()
		p.state = StateRunning
		p.done = make(chan struct{})
		p.mu.Unlock()

		go p.run(ch)
	})

	if !started {
		close(ch)
	}
	return ch
}

// Wait blocks until the scan ends or ctx is done and returns the result.
// It starts the probe if it has not been started.
func (p *Probe) Wait(ctx context.Context) (Endpoint, bool) {
	select {
	case ep, ok := <-p.Start():
		if ok {
			return ep, true
		}
	case <-ctx.Done():
		return Endpoint{}, false
	}

	p.mu.Lock()
	done := p.done
	p.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return Endpoint{}, false
	}
	return p.Result()
}

// State returns the current lifecycle state.
func (p *Probe) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Result returns the detected endpoint, if any.
func (p *Probe) Result() (Endpoint, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.result == nil {
		return Endpoint{}, false
	}
	return *p.result, true
}

func (p *Probe) run(ch chan<- Endpoint) {
	defer close(ch)

	host := p.host()
	for _, port := range p.ports() {
		if !p.isTorPort(host, port) {
			continue
		}

		ep := Endpoint{Host: host, Port: port}
		p.finish(StateFound, &ep)
		p.logger().Debug("tor proxy detected", "endpoint", ep.String())
		ch <- ep
		return
	}

	p.finish(StateNotFound, nil)
	p.logger().Debug("no tor proxy detected", "ports", p.ports())
}

func (p *Probe) finish(s State, ep *Endpoint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	p.result = ep
	close(p.done)
}

// isTorPort reports whether the service on port answers with the Tor signature.
// Any connection or I/O failure counts as a miss.
func (p *Probe) isTorPort(host string, port int) bool {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	timeout := p.timeout()

	conn, err := p.dial()("tcp", addr, timeout)
	if err != nil {
		p.logger().Debug("probe connect failed", "addr", addr, "err", err)
		return false
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(timeout))

	if _, err := conn.Write(p.payload()); err != nil {
		p.logger().Debug("probe write failed", "addr", addr, "err", err)
		return false
	}

	sig := []byte(p.signature())
	buf := make([]byte, maxResponse)
	total := 0
	for total < len(buf) {
		n, err := conn.Read(buf[total:])
		total += n
		if bytes.Contains(buf[:total], sig) {
			return true
		}
		if err != nil {
			p.logger().Debug("probe read ended without signature", "addr", addr, "err", err)
			return false
		}
	}
	return false
}

func (p *Probe) host() string {
	if p.Host != "" {
		return p.Host
	}
	return DefaultHost
}

func (p *Probe) ports() []int {
	if len(p.Ports) > 0 {
		return p.Ports
	}
	return DefaultPorts
}

func (p *Probe) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultTimeout
}

func (p *Probe) payload() []byte {
	if len(p.Payload) > 0 {
		return p.Payload
	}
	return DefaultPayload
}

func (p *Probe) signature() string {
	if p.Signature != "" {
		return p.Signature
	}
	return DefaultSignature
}

func (p *Probe) dial() DialFunc {
	if p.Dial != nil {
		return p.Dial
	}
	return net.DialTimeout
}

func (p *Probe) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
