package exchange

import (
	"net/http"
	"time"
)

type Options struct {
	Timeout         time.Duration
	FollowRedirects bool
	Auth            AuthOptions
	SkipVerify      bool
	Transport       http.RoundTripper // nil means a clone of http.DefaultTransport
}

type AuthOptions struct {
	Enabled  bool
	UserName string
	Password string
}
