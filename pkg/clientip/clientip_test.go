package clientip_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qrstudio/pkg/clientip"
)

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{name: "remote addr", remoteAddr: "203.0.113.7:5123", want: "203.0.113.7"},
		{name: "remote addr without port", remoteAddr: "203.0.113.7", want: "203.0.113.7"},
		{name: "cloudflare wins", headers: map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Real-IP": "198.51.100.2"}, remoteAddr: "10.0.0.1:80", want: "198.51.100.1"},
		{name: "digitalocean", headers: map[string]string{"DO-Connecting-IP": "198.51.100.3"}, remoteAddr: "10.0.0.1:80", want: "198.51.100.3"},
		{name: "leftmost forwarded", headers: map[string]string{"X-Forwarded-For": " 198.51.100.4 , 10.0.0.2, 10.0.0.3"}, remoteAddr: "10.0.0.1:80", want: "198.51.100.4"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "198.51.100.5"}, remoteAddr: "10.0.0.1:80", want: "198.51.100.5"},
		{name: "invalid header skipped", headers: map[string]string{"CF-Connecting-IP": "nope", "X-Real-IP": "198.51.100.6"}, remoteAddr: "10.0.0.1:80", want: "198.51.100.6"},
		{name: "unspecified skipped", headers: map[string]string{"X-Forwarded-For": "0.0.0.0"}, remoteAddr: "10.0.0.1:80", want: "10.0.0.1"},
		{name: "ipv6", remoteAddr: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "ipv6 normalized", headers: map[string]string{"X-Real-IP": "2001:0db8:0000::0001"}, remoteAddr: "10.0.0.1:80", want: "2001:db8::1"},
		{name: "unparseable remote addr returned raw", remoteAddr: "pipe", want: "pipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.GetIP(r))
		})
	}
}
