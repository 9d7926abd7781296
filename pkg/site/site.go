package site

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

// Site serves the hand written pages and assets that live next to the database.
type Site interface {
	// ServePage writes the named html file from the site root with the given status.
	ServePage(w http.ResponseWriter, r *http.Request, name string, status int) error
	// FileServer serves files below dir. Directories and missing files go to notFound.
	FileServer(dir string, notFound http.Handler) http.Handler
	// ServeFile serves a single file from the site root.
	ServeFile(w http.ResponseWriter, r *http.Request, name string, notFound http.Handler)
}

type site struct {
	fs     afero.Fs
	logger hclog.Logger
}

// NewSite reads pages from fs. fs is never written to.
func NewSite(logger hclog.Logger, fs afero.Fs) Site {
	return &site{
		fs:     afero.NewReadOnlyFs(fs),
		logger: logger.Named("site"),
	}
}

// NewDirSite roots the site at dir on the local disk.
func NewDirSite(logger hclog.Logger, dir string) Site {
	return NewSite(logger, afero.NewBasePathFs(afero.NewOsFs(), dir))
}

func (s *site) ServePage(w http.ResponseWriter, r *http.Request, name string, status int) error {
	body, err := afero.ReadFile(s.fs, clean(name))
	if err != nil {
		s.logger.Error("failed to read page", "page", name, "error", err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, err = w.Write(body)
	}
	return err
}

func (s *site) FileServer(dir string, notFound http.Handler) http.Handler {
	prefix := clean(dir)
	files := http.FileServer(afero.NewHttpFs(s.fs).Dir(prefix))

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := s.fs.Stat(path.Join(prefix, clean(r.URL.Path)))
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}
		files.ServeHTTP(w, r)
	}))
}

func (s *site) ServeFile(w http.ResponseWriter, r *http.Request, name string, notFound http.Handler) {
	name = clean(name)

	file, err := s.fs.Open(name)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("failed to open file", "file", name, "error", err)
		}
		notFound.ServeHTTP(w, r)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil || info.IsDir() {
		notFound.ServeHTTP(w, r)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), file)
}

// clean anchors name at the site root so ".." can never climb out of it.
func clean(name string) string {
	return path.Clean("/" + strings.TrimPrefix(name, "/"))
}
