// Package port checks local TCP ports.
package port

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// DialTimeout bounds IsListening.
const DialTimeout = 500 * time.Millisecond

// IsLocal reports whether host names this machine.
func IsLocal(host string) bool {
	host = strings.Trim(host, "[]")
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// IsListening reports whether something accepts connections at host:port.
func IsListening(host string, port int, timeout time.Duration) bool {
	if timeout <= 0 {
		timeout = DialTimeout
	}
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
