package privfolio

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Some market-data endpoints reject requests without a browser-looking
// User-Agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// userAgentTransport decorates every outgoing request with browserUserAgent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", browserUserAgent)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// newQuoteClient returns the http client used against the market-data
// provider. The timeout bounds every price lookup.
func newQuoteClient() *http.Client {
	return &http.Client{
		Transport: userAgentTransport{},
		Timeout:   20 * time.Second,
	}
}

// jwget gets the JSON at 'addr' and decodes it into data.
func jwget(client *http.Client, addr string, data any) error {
	resp, err := client.Get(addr)
	if err != nil {
		return fmt.Errorf("cannot get %q: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot get %q: status %s", addr, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("cannot decode response from %q: %w", addr, err)
	}
	return nil
}
