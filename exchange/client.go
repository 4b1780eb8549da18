package exchange

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/HexmosTech/httpie-lite/version"
	"github.com/go-resty/resty/v2"
)

const maxRedirects = 30

// NewClient returns a resty client configured from options.
func NewClient(options *Options, logger *slog.Logger) *resty.Client {
	c := resty.New()
	c.SetLogger(newRestyLogger(logger))
	c.SetTimeout(options.Timeout)
	c.SetHeader("User-Agent", fmt.Sprintf("%s/%s", version.Name, version.Current()))
	c.SetAllowGetMethodPayload(true)
	c.SetPreRequestHook(attachPayload)

	if options.FollowRedirects {
		c.SetRedirectPolicy(resty.FlexibleRedirectPolicy(maxRedirects))
	} else {
		// Do not follow redirects
		c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	}

	var transp http.RoundTripper
	if options.Transport == nil {
		transp = http.DefaultTransport.(*http.Transport).Clone()
	} else {
		transp = options.Transport
	}
	if httpTransport, ok := transp.(*http.Transport); ok && options.SkipVerify {
		if httpTransport.TLSClientConfig == nil {
			httpTransport.TLSClientConfig = &tls.Config{}
		}
		httpTransport.TLSClientConfig.InsecureSkipVerify = true
	}
	c.SetTransport(transp)

	return c
}
