package server

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_RoundTrip(t *testing.T) {
	tests := []struct {
		host string
		port string
		t    Transport
	}{
		{"a.example", "50002", TransportSSL},
		{"electrum.example.org", "50001", TransportTCP},
		{"127.0.0.1", "1", TransportTCP},
		{"::1", "65535", TransportSSL},
		{"abcdefghijklmnop.onion", "50001", TransportTCP},
	}

	for _, tt := range tests {
		addr, err := Validate(tt.host, tt.port, tt.t)
		if err != nil {
			t.Fatalf("Validate(%q, %q, %q): %v", tt.host, tt.port, tt.t, err)
		}
		if addr.Host != tt.host || addr.Port != tt.port || addr.Transport != tt.t {
			t.Fatalf("round trip = %+v, want %s:%s:%s", addr, tt.host, tt.port, tt.t)
		}

		decoded, err := Deserialize(addr.String())
		if err != nil {
			t.Fatalf("Deserialize(%q): %v", addr.String(), err)
		}
		if decoded != addr {
			t.Fatalf("Deserialize(%q) = %+v, want %+v", addr.String(), decoded, addr)
		}
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
		t    Transport
	}{
		{"port zero", "a.example", "0", TransportSSL},
		{"port too large", "a.example", "70000", TransportSSL},
		{"port not numeric", "a.example", "http", TransportSSL},
		{"port signed", "a.example", "+80", TransportSSL},
		{"port empty", "a.example", "", TransportSSL},
		{"empty host", "", "50002", TransportSSL},
		{"host with space", "a example", "50002", TransportSSL},
		{"label too long", strings.Repeat("a", 64) + ".example", "50002", TransportSSL},
		{"unknown transport", "a.example", "50002", Transport("x")},
		{"empty transport", "a.example", "50002", Transport("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.host, tt.port, tt.t)
			if !errors.Is(err, ErrInvalidServerAddress) {
				t.Fatalf("Validate(%q, %q, %q) err = %v, want ErrInvalidServerAddress",
					tt.host, tt.port, tt.t, err)
			}
			var ae *AddressError
			if !errors.As(err, &ae) || ae.Reason == "" {
				t.Fatalf("expected *AddressError with reason, got %T: %v", err, err)
			}
		})
	}
}

func TestDeserialize_Malformed(t *testing.T) {
	for _, s := range []string{"", "a.example", "a.example:s", "a.example:50002:q"} {
		if _, err := Deserialize(s); !errors.Is(err, ErrInvalidServerAddress) {
			t.Fatalf("Deserialize(%q) err = %v, want ErrInvalidServerAddress", s, err)
		}
	}
}

func TestAddress_HostPort(t *testing.T) {
	a := Address{Host: "::1", Port: "50001", Transport: TransportTCP}
	if got := a.HostPort(); got != "[::1]:50001" {
		t.Fatalf("HostPort() = %q", got)
	}
}
