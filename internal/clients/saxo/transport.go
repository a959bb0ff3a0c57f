package saxo

import "net/http"

const clientKeyParam = "ClientKey"

// clientKeyTransport adds the ClientKey query parameter to every outgoing request,
// whatever its path. An existing ClientKey value is replaced.
type clientKeyTransport struct {
	base      http.RoundTripper
	clientKey string
}

func newClientKeyTransport(base http.RoundTripper, clientKey string) *clientKeyTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &clientKeyTransport{base: base, clientKey: clientKey}
}

// RoundTrip implements http.RoundTripper. The caller's request is left untouched.
func (t *clientKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	q := r.URL.Query()
	q.Set(clientKeyParam, t.clientKey)
	r.URL.RawQuery = q.Encode()

	return t.base.RoundTrip(r)
}
