package servers

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/net2share/walletnet/internal/server"
)

func TestParse(t *testing.T) {
	data := []byte(`
servers:
  a.example:
    t: "50001"
    s: "50002"
    pruning: "10000"
  tcp.example:
    t: "110"
`)
	d, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d["a.example"].Pruning != "10000" {
		t.Fatalf("pruning = %q", d["a.example"].Pruning)
	}

	table := d.Table()
	if got := table["tcp.example"]; len(got) != 1 || got[server.TransportTCP] != "110" {
		t.Fatalf("tcp.example ports = %v", got)
	}

	if got := d.Hosts(server.TransportSSL); !slices.Equal(got, []string{"a.example"}) {
		t.Fatalf("ssl hosts = %v", got)
	}
	if got := d.Hosts(server.TransportTCP); !slices.Equal(got, []string{"a.example", "tcp.example"}) {
		t.Fatalf("tcp hosts = %v", got)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"no ports", "servers:\n  a.example: {}\n", "no ports"},
		{"bad port", "servers:\n  a.example:\n    s: \"0\"\n", "out of range"},
		{"bad host", "servers:\n  \"a b\":\n    s: \"50002\"\n", "invalid host"},
		{"bad yaml", "servers: [", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.yaml")

	user := `servers:
  mine.example:
    s: "60002"
  electrum.emzy.de:
    t: "1234"
`
	if err := os.WriteFile(path, []byte(user), 0640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d["mine.example"].SSL != "60002" {
		t.Fatalf("user server missing: %+v", d["mine.example"])
	}
	if got := d["electrum.emzy.de"]; got.TCP != "1234" || got.SSL != "" {
		t.Fatalf("user entry should replace builtin, got %+v", got)
	}
	if _, ok := d["electrum.blockstream.info"]; !ok {
		t.Fatalf("builtin server missing after merge")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	d, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(d) != len(builtin) {
		t.Fatalf("got %d servers, want %d", len(d), len(builtin))
	}
}

func TestBuiltin_IsCopy(t *testing.T) {
	d := Builtin()
	delete(d, "electrum.blockstream.info")
	if _, ok := builtin["electrum.blockstream.info"]; !ok {
		t.Fatalf("Builtin returned the shared map")
	}
}
