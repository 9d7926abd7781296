package controllers

import (
	"net/http"
	"portfolio/pkg/constants"
	"portfolio/pkg/site"

	"github.com/hashicorp/go-hclog"
)

// ErrorPages answers requests that cannot be served normally.
type ErrorPages interface {
	NotFound(w http.ResponseWriter, r *http.Request)
	ServerError(w http.ResponseWriter, r *http.Request)
}

type PageHTTPController interface {
	ErrorPages
	Page(name string) http.HandlerFunc
	File(name string) http.HandlerFunc
	Assets(dir string) http.Handler
}

type pageController struct {
	site   site.Site
	logger hclog.Logger
}

func NewPageController(logger hclog.Logger, s site.Site) PageHTTPController {
	return &pageController{
		site:   s,
		logger: logger.Named("page-controller"),
	}
}

// Page serves a static html page from the site directory
func (controller *pageController) Page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := controller.site.ServePage(w, r, name, http.StatusOK); err != nil {
			controller.NotFound(w, r)
		}
	}
}

func (controller *pageController) File(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		controller.site.ServeFile(w, r, name, http.HandlerFunc(controller.NotFound))
	}
}

func (controller *pageController) Assets(dir string) http.Handler {
	return controller.site.FileServer(dir, http.HandlerFunc(controller.NotFound))
}

// NotFound serves the home page with a 404
func (controller *pageController) NotFound(w http.ResponseWriter, r *http.Request) {
	controller.serveIndex(w, r, http.StatusNotFound)
}

// ServerError serves the home page with a 500
func (controller *pageController) ServerError(w http.ResponseWriter, r *http.Request) {
	controller.serveIndex(w, r, http.StatusInternalServerError)
}

func (controller *pageController) serveIndex(w http.ResponseWriter, r *http.Request, status int) {
	if err := controller.site.ServePage(w, r, constants.IndexPage, status); err != nil {
		http.Error(w, http.StatusText(status), status)
	}
}
