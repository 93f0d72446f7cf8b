package agent

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/luscis/ifdhcp/pkg/api"
	co "github.com/luscis/ifdhcp/pkg/config"
	"github.com/luscis/ifdhcp/pkg/dhcpc"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusNotFound)
}

func NotAllowed(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Oops!", http.StatusMethodNotAllowed)
}

type Http struct {
	dhcper     api.Dhcper
	listen     string
	adminToken string
	adminFile  string
	server     *http.Server
	router     *mux.Router
}

func NewHttp(dhcper api.Dhcper, c *co.Agent) *Http {
	h := &Http{
		dhcper:    dhcper,
		adminFile: c.TokenFile,
	}
	if c.Http != nil {
		h.listen = c.Http.Listen
	}
	return h
}

func (h *Http) Initialize() {
	r := h.Router()
	if h.server == nil {
		h.server = &http.Server{
			Addr:         h.listen,
			Handler:      r,
			ReadTimeout:  time.Minute,
			WriteTimeout: 5 * time.Minute,
		}
	}
	h.LoadToken()
	h.SaveToken()
	h.LoadRouter()
}

// LoadToken reads the admin token, a new one is generated when the
// file is missing or empty.
func (h *Http) LoadToken() {
	token := ""
	if err := libol.FileExist(h.adminFile); err != nil {
		libol.Info("Http.LoadToken: file:%s does not exist", h.adminFile)
	} else if data, err := libol.LoadFile(h.adminFile); err != nil {
		libol.Error("Http.LoadToken: file:%s %s", h.adminFile, err)
	} else {
		token = strings.TrimSpace(string(data))
	}
	if token == "" {
		token = libol.GenString(32)
	}
	h.SetToken(token)
}

func (h *Http) SaveToken() {
	if h.adminFile == "" {
		return
	}
	if err := libol.WriteFile(h.adminFile, []byte(h.adminToken)); err != nil {
		libol.Error("Http.SaveToken: %s", err)
	}
}

func (h *Http) SetToken(value string) {
	h.adminToken = value
}

// IsAuth accepts the admin token as basic auth user name.
func (h *Http) IsAuth(w http.ResponseWriter, r *http.Request) bool {
	user, _, ok := r.BasicAuth()
	if !ok {
		return false
	}
	return user == h.adminToken
}

func (h *Http) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		libol.Debug("Http.Middleware %s %s", r.Method, r.URL.Path)
		if !h.IsAuth(w, r) {
			w.Header().Set("WWW-Authenticate", "Basic")
			http.Error(w, "Authorization Required", http.StatusUnauthorized)
			return
		}
		latest := time.Now().Unix()
		next.ServeHTTP(w, r)
		dt := time.Now().Unix() - latest
		if dt > 2 {
			libol.Warn("Http.Middleware %s %s long time %d", r.Method, r.URL.Path, dt)
		}
	})
}

func (h *Http) Router() *mux.Router {
	if h.router == nil {
		h.router = mux.NewRouter()
		h.router.NotFoundHandler = http.HandlerFunc(NotFound)
		h.router.MethodNotAllowedHandler = http.HandlerFunc(NotAllowed)
		h.router.Use(h.Middleware)
	}
	return h.router
}

func (h *Http) Prome(r *mux.Router) {
	handler := promhttp.HandlerFor(dhcpc.Metrics(), promhttp.HandlerOpts{})
	r.Handle("/metrics", handler)
}

func (h *Http) LoadRouter() {
	router := h.Router()
	h.Prome(router)
	router.HandleFunc("/api/urls", h.GetApi).Methods("GET")
	api.Add(router, h.dhcper)
}

func (h *Http) Start() {
	if h.listen == "" {
		return
	}
	libol.Info("Http.Start %s", h.listen)
	libol.Go(func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			libol.Error("Http.Start on %s: %s", h.listen, err)
		}
	})
}

func (h *Http) Shutdown() {
	if h.server == nil || h.listen == "" {
		return
	}
	libol.Info("Http.Shutdown %s", h.listen)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.server.Shutdown(ctx); err != nil {
		libol.Error("Http.Shutdown: %v", err)
	}
}

func (h *Http) GetApi(w http.ResponseWriter, r *http.Request) {
	var urls []string
	_ = h.router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil || !strings.HasPrefix(path, "/api") {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}
		for _, m := range methods {
			urls = append(urls, fmt.Sprintf("%-6s %s", m, path))
		}
		return nil
	})
	api.ResponseYaml(w, urls)
}
