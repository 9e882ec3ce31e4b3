package reader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// A scene data stream backed by a local file or a http/https download.
type resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *resource) Path() string {
	return r.url.String()
}

// Returns true if the resource is streamed over http/https.
func (r *resource) IsRemote() bool {
	return r.url.Scheme != ""
}

// Returns the lower-cased extension of the resource path. Query strings of
// remote resources are ignored.
func (r *resource) Ext() string {
	return strings.ToLower(filepath.Ext(r.url.Path))
}

// Open a resource. Paths without a scheme are treated as local files while
// http/https URLs are fetched with the default client. The caller must close
// the returned resource.
func openResource(location string) (*resource, error) {
	// Windows paths are accepted by normalizing backslashes
	resURL, err := url.Parse(strings.Replace(location, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "":
		if reader, err = os.Open(filepath.Clean(resURL.Path)); err != nil {
			return nil, err
		}
	case "http", "https":
		if reader, err = fetch(resURL); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("resource: unsupported scheme '%s'", resURL.Scheme)
	}

	return &resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

func fetch(resURL *url.URL) (io.ReadCloser, error) {
	resp, err := http.Get(resURL.String())
	if err != nil {
		return nil, fmt.Errorf("resource: could not fetch '%s': %s", resURL, err)
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, fmt.Errorf("resource: could not fetch '%s': status %d", resURL, resp.StatusCode)
	}
	return resp.Body, nil
}
