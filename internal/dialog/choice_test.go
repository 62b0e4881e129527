package dialog

import (
	"errors"
	"log/slog"
	"net"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/net2share/walletnet/internal/config"
	"github.com/net2share/walletnet/internal/network"
	"github.com/net2share/walletnet/internal/server"
	"github.com/net2share/walletnet/internal/servers"
	"github.com/net2share/walletnet/internal/torprobe"
)

type fakeNetwork struct {
	dir        servers.Directory
	params     network.Parameters
	interfaces []string
	connected  bool
	height     int

	applied []network.Parameters
}

func (f *fakeNetwork) GetServers() servers.Directory { return f.dir }
func (f *fakeNetwork) GetParameters() network.Parameters { return f.params }
func (f *fakeNetwork) GetInterfaces() []string { return f.interfaces }
func (f *fakeNetwork) IsConnected() bool { return f.connected }
func (f *fakeNetwork) GetLocalHeight() int { return f.height }
func (f *fakeNetwork) SetParameters(p network.Parameters) error {
	f.applied = append(f.applied, p)
	return nil
}

type lockedStore []string

func (l lockedStore) IsModifiable(name string) bool { return !slices.Contains(l, name) }

func newFake() *fakeNetwork {
	return &fakeNetwork{
		dir: servers.Directory{
			"a.example":   {TCP: "50001", SSL: "50002", Pruning: "10000"},
			"tcp.example": {TCP: "110"},
			"ssl.example": {SSL: "443"},
		},
		params: network.Parameters{
			Host:        "a.example",
			Port:        "50002",
			Transport:   server.TransportSSL,
			AutoConnect: true,
		},
	}
}

func TestNew_FromParameters(t *testing.T) {
	c := New(newFake(), lockedStore(nil))

	if c.Host() != "a.example" || c.Port() != "50002" || !c.SSL() || !c.AutoConnect() {
		t.Fatalf("form = host %q port %q ssl %v auto %v", c.Host(), c.Port(), c.SSL(), c.AutoConnect())
	}
	if c.Protocol() != server.TransportSSL {
		t.Fatalf("protocol = %q", c.Protocol())
	}
	want := config.DefaultProxy()
	if c.Proxy() != want {
		t.Fatalf("proxy = %+v, want %+v", c.Proxy(), want)
	}
}

func TestNew_UnknownHostUsesDefaultPorts(t *testing.T) {
	f := newFake()
	f.params = network.Parameters{Host: "b.example", Transport: server.TransportTCP}
	c := New(f, lockedStore(nil))

	if c.Port() != server.DefaultPorts[server.TransportTCP] || c.SSL() {
		t.Fatalf("port %q ssl %v", c.Port(), c.SSL())
	}
}

func TestStatus(t *testing.T) {
	f := newFake()
	c := New(f, lockedStore(nil))
	if got := c.Status(); got != "Not connected\nDisconnected from server" {
		t.Fatalf("Status() = %q", got)
	}
	if c.ServerListLabel() != "Default Servers" {
		t.Fatalf("label = %q", c.ServerListLabel())
	}

	f.connected = true
	f.interfaces = []string{"a.example", "ssl.example"}
	f.height = 840000
	want := "Blockchain: 840000 blocks.\nGetting block headers from 2 nodes.\nServer: a.example"
	if got := c.Status(); got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
	if c.ServerListLabel() != "Active Servers" {
		t.Fatalf("label = %q", c.ServerListLabel())
	}

	c.Wizard = true
	if !strings.HasPrefix(c.Status(), "Please choose a server.") {
		t.Fatalf("wizard Status() = %q", c.Status())
	}
}

func TestServerList_FollowsProtocol(t *testing.T) {
	c := New(newFake(), lockedStore(nil))

	got := c.ServerList()
	want := []ServerItem{{Host: "a.example", Pruning: "10000"}, {Host: "ssl.example"}}
	if !slices.Equal(got, want) {
		t.Fatalf("ssl list = %+v", got)
	}

	c.ChangeProtocol(false)
	if c.Port() != "50001" || c.SSL() {
		t.Fatalf("after tcp: port %q ssl %v", c.Port(), c.SSL())
	}
	var hosts []string
	for _, it := range c.ServerList() {
		hosts = append(hosts, it.Host)
	}
	if !slices.Equal(hosts, []string{"a.example", "tcp.example"}) {
		t.Fatalf("tcp list = %v", hosts)
	}
}

func TestChangeProtocol_FallsBackWhenUnavailable(t *testing.T) {
	c := New(newFake(), lockedStore(nil))
	c.SelectServer("ssl.example")
	c.ChangeProtocol(false)

	if c.Port() != "443" || !c.SSL() || c.Protocol() != server.TransportSSL {
		t.Fatalf("port %q ssl %v protocol %q", c.Port(), c.SSL(), c.Protocol())
	}
}

func TestSelectServer_KeepsProtocol(t *testing.T) {
	c := New(newFake(), lockedStore(nil))
	c.ChangeProtocol(false)
	c.SelectServer("tcp.example")

	if c.Host() != "tcp.example" || c.Port() != "110" || c.SSL() {
		t.Fatalf("host %q port %q ssl %v", c.Host(), c.Port(), c.SSL())
	}

	c.SelectServer("")
	if c.Host() != "tcp.example" {
		t.Fatalf("empty selection changed host to %q", c.Host())
	}
}

func TestEnabled(t *testing.T) {
	c := New(newFake(), lockedStore(nil))

	if c.Enabled(ControlServerHost) || c.Enabled(ControlServerList) {
		t.Fatalf("server fields editable while auto-connect is on")
	}
	c.SetAutoConnect(false)
	if !c.Enabled(ControlServerHost) || !c.Enabled(ControlServerPort) {
		t.Fatalf("server fields locked with auto-connect off")
	}
	if c.Enabled(ControlProxyHost) {
		t.Fatalf("proxy host editable with mode none")
	}
	c.SetProxyMode(config.ProxySOCKS5)
	if !c.Enabled(ControlProxyHost) || !c.Enabled(ControlProxyPassword) {
		t.Fatalf("proxy fields locked with socks5")
	}

	locked := New(newFake(), lockedStore{config.SettingServer, config.SettingProxy})
	locked.SetAutoConnect(false)
	for _, ctl := range []Control{ControlServerHost, ControlSSL, ControlProxyMode, ControlProxyUser} {
		if locked.Enabled(ctl) {
			t.Fatalf("control %d enabled while locked", ctl)
		}
	}
	if !locked.Enabled(ControlAutoConnect) {
		t.Fatalf("auto-connect disabled by a server lock")
	}
	if New(newFake(), lockedStore{config.SettingAutoConnect}).Enabled(ControlAutoConnect) {
		t.Fatalf("auto-connect enabled while locked")
	}
}

func TestTorSuggestion(t *testing.T) {
	c := New(newFake(), lockedStore(nil))
	if _, _, ok := c.TorSuggestion(); ok {
		t.Fatalf("suggestion present before detection")
	}
	if c.UseTorProxy(true) {
		t.Fatalf("UseTorProxy succeeded without a detected proxy")
	}

	c.SuggestProxy(torprobe.Endpoint{Host: "127.0.0.1", Port: 9150})
	ep, checked, ok := c.TorSuggestion()
	if !ok || checked || ep.Port != 9150 {
		t.Fatalf("suggestion = %+v checked %v ok %v", ep, checked, ok)
	}
	if c.TorLabel() != "Use Tor proxy at port 9150" {
		t.Fatalf("label = %q", c.TorLabel())
	}

	c.SetProxyUser("alice")
	if !c.UseTorProxy(true) {
		t.Fatalf("UseTorProxy failed")
	}
	want := config.ProxyConfig{Mode: config.ProxySOCKS5, Host: "127.0.0.1", Port: "9150"}
	if c.Proxy() != want {
		t.Fatalf("proxy = %+v, want %+v", c.Proxy(), want)
	}
	if _, checked, _ := c.TorSuggestion(); !checked {
		t.Fatalf("suggestion not checked after use")
	}

	c.SetProxyPort("9050")
	if _, checked, _ := c.TorSuggestion(); checked {
		t.Fatalf("manual edit kept suggestion checked")
	}

	c.UseTorProxy(false)
	if c.Proxy().Mode != config.ProxyNone {
		t.Fatalf("mode = %q after disabling tor", c.Proxy().Mode)
	}
}

func TestSuggestProxy_PreChecksMatchingConfig(t *testing.T) {
	f := newFake()
	f.params.Proxy = &config.ProxyConfig{Mode: config.ProxySOCKS5, Host: "127.0.0.1", Port: "9050"}
	c := New(f, lockedStore(nil))

	c.SuggestProxy(torprobe.Endpoint{Host: "127.0.0.1", Port: 9050})
	if _, checked, _ := c.TorSuggestion(); !checked {
		t.Fatalf("suggestion should start checked when proxy already matches")
	}
}

func TestStartTorDetection(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 8)
		_, _ = conn.Read(buf)
		_, _ = conn.Write([]byte("HTTP/1.0 501 Tor is not an HTTP Proxy\r\n\r\n"))
	}()
	port := ln.Addr().(*net.TCPAddr).Port

	c := New(newFake(), lockedStore(nil))
	p := &torprobe.Probe{Ports: []int{port}, Timeout: time.Second, Logger: slog.New(slog.DiscardHandler)}

	ep, ok := <-c.StartTorDetection(p)
	if !ok {
		t.Fatalf("no proxy detected")
	}
	c.SuggestProxy(ep)
	if got, _, ok := c.TorSuggestion(); !ok || got.Port != port {
		t.Fatalf("suggestion = %+v, %v", got, ok)
	}
}

func TestAccept(t *testing.T) {
	f := newFake()
	c := New(f, lockedStore(nil))
	c.SetAutoConnect(false)
	c.SetProxyMode(config.ProxyHTTP)
	c.SetProxyHost("proxy.example")
	c.SetProxyPort("8080")

	if err := c.Accept(); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if len(f.applied) != 1 {
		t.Fatalf("SetParameters called %d times", len(f.applied))
	}
	p := f.applied[0]
	if p.Address().String() != "a.example:50002:s" || p.AutoConnect {
		t.Fatalf("applied %+v", p)
	}
	if p.Proxy == nil || p.Proxy.String() != "http:proxy.example:8080" {
		t.Fatalf("applied proxy %v", p.Proxy)
	}
}

func TestAccept_NoProxyWhenModeNone(t *testing.T) {
	f := newFake()
	c := New(f, lockedStore(nil))
	c.SetProxyHost("ignored.example")

	if err := c.Accept(); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if f.applied[0].Proxy != nil {
		t.Fatalf("proxy = %+v, want nil", f.applied[0].Proxy)
	}
}

func TestAccept_InvalidServer(t *testing.T) {
	for _, port := range []string{"0", "70000", "abc"} {
		f := newFake()
		c := New(f, lockedStore(nil))
		c.SetPort(port)

		err := c.Accept()
		if !errors.Is(err, server.ErrInvalidServerAddress) {
			t.Fatalf("port %q: err = %v, want ErrInvalidServerAddress", port, err)
		}
		if len(f.applied) != 0 {
			t.Fatalf("port %q: SetParameters called on invalid input", port)
		}
	}

	f := newFake()
	c := New(f, lockedStore(nil))
	c.SetHost("")
	if err := c.Accept(); !errors.Is(err, server.ErrInvalidServerAddress) {
		t.Fatalf("empty host: err = %v", err)
	}
}
