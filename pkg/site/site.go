// Package site serves the landing page assets and the fallback entry document.
package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/navarrastar/landing-backend/pkg/models"
)

// IndexFile is the entry document served for every unmatched GET
const IndexFile = "index.html"

//go:embed static
var embedded embed.FS

// Assets picks the asset root: dir when it exists on disk, otherwise the
// assets compiled into the binary. The second value names the source for logs.
func Assets(dir string) (fs.FS, string, error) {
	if dir = strings.TrimSpace(dir); dir != "" {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			return os.DirFS(dir), dir, nil
		case err == nil:
			return nil, "", fmt.Errorf("static dir %s is not a directory", dir)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", fmt.Errorf("error reading static dir: %w", err)
		}
	}

	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		return nil, "", fmt.Errorf("error opening embedded assets: %w", err)
	}
	return sub, "embedded", nil
}

// Site serves files from one asset root
type Site struct {
	assets  fs.FS
	index   []byte
	builtAt time.Time
}

// New loads the fallback document from assets, rendering the built-in landing
// page for schema when the root has no index.html
func New(assets fs.FS, schema models.LeadSchema) (*Site, error) {
	index, err := fs.ReadFile(assets, IndexFile)
	if errors.Is(err, fs.ErrNotExist) {
		var buf bytes.Buffer
		if err := LandingPage(DefaultPageConfig(schema)).Render(&buf); err != nil {
			return nil, fmt.Errorf("error rendering landing page: %w", err)
		}
		index = buf.Bytes()
	} else if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", IndexFile, err)
	}

	return &Site{assets: assets, index: index, builtAt: time.Now()}, nil
}

// NoRoute is registered as the router's no-route branch. It serves a file
// from the asset root when the path names one and the entry document
// otherwise. Only GET and HEAD are answered.
func (s *Site) NoRoute(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, models.Result{OK: false, Error: "Not found"})
		return
	}

	if name, ok := s.resolve(c.Request.URL.Path); ok {
		if s.serveFile(c, name) {
			return
		}
	}

	s.serveIndex(c)
}

// resolve maps a URL path onto a name inside the asset root
func (s *Site) resolve(urlPath string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	if name == "" || name == IndexFile || !fs.ValidPath(name) {
		return "", false
	}
	return name, true
}

func (s *Site) serveFile(c *gin.Context, name string) bool {
	f, err := s.assets.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	content, ok := f.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(f)
		if err != nil {
			return false
		}
		content = bytes.NewReader(data)
	}

	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), content)
	return true
}

func (s *Site) serveIndex(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	http.ServeContent(c.Writer, c.Request, IndexFile, s.builtAt, bytes.NewReader(s.index))
}
