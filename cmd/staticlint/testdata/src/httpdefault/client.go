package httpdefault

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

func fetch(u string) (*http.Response, error) {
	return http.Get(u) // want `http.Get uses the default client without timeout; use a configured \*http.Client`
}

func send(u string) (*http.Response, error) {
	return http.Post(u, "application/json", strings.NewReader("{}")) // want `http.Post uses the default client`
}

func form(u string) (*http.Response, error) {
	return http.PostForm(u, url.Values{}) // want `http.PostForm uses the default client`
}

func probe(u string) (*http.Response, error) {
	return http.Head(u) // want `http.Head uses the default client`
}

func shared() *http.Client {
	return http.DefaultClient // want `http.DefaultClient has no timeout`
}

func configured(u string) (*http.Response, error) {
	client := &http.Client{Timeout: 5 * time.Second}
	return client.Get(u)
}

func newRequest(u string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, u, nil)
}
