package scene

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// resource is a streamable local file or remote manifest/mesh source
// referenced while loading a scene (section 4.1, 6): a manifest may point at
// model files that live alongside it on disk or behind an http(s) URL.
type resource struct {
	io.ReadCloser
	url *url.URL
}

// openResource opens pathToResource for reading. If relTo is given and
// pathToResource does not define a scheme, the path is resolved relative to
// relTo's own directory, mirroring how a manifest's model paths are relative
// to the manifest file itself. http/https URLs are fetched via net/http.
// Callers must Close the returned resource.
func openResource(pathToResource string, relTo *resource) (*resource, error) {
	u, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" && relTo != nil {
		path := u.Path
		u, _ = u.Parse(relTo.url.String())
		prefix := u.Path
		if u.Scheme == "" {
			prefix, err = filepath.Abs(relTo.url.String())
			if err != nil {
				return nil, fmt.Errorf("scene: could not resolve absolute path for %q: %w", relTo.url.String(), err)
			}
		}
		u.Path = filepath.Dir(prefix) + "/" + path
	}

	var reader io.ReadCloser
	switch u.Scheme {
	case "":
		reader, err = os.Open(filepath.Clean(u.Path))
		if err != nil {
			return nil, fmt.Errorf("scene: could not open %q: %w", u.Path, err)
		}
	case "http", "https":
		resp, err := http.Get(u.String())
		if err != nil {
			return nil, fmt.Errorf("scene: could not fetch %q: %w", u.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("scene: could not fetch %q: status %d", u.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("scene: unsupported scheme %q", u.Scheme)
	}

	return &resource{ReadCloser: reader, url: u}, nil
}
