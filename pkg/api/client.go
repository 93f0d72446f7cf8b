package api

import (
	"net/http"
	"sort"

	"github.com/gorilla/mux"
	"github.com/luscis/ifdhcp/pkg/schema"
)

type Client struct {
	Dhcper Dhcper
}

func (h Client) Router(router *mux.Router) {
	router.HandleFunc("/api/client", h.List).Methods("GET")
	router.HandleFunc("/api/client/{name}/{version}", h.Get).Methods("GET")
	router.HandleFunc("/api/client/{name}/{version}/conf", h.Conf).Methods("GET")
	router.HandleFunc("/api/client/{name}/{version}/lease", h.Lease).Methods("GET")
	router.HandleFunc("/api/client/{name}/{version}/start", h.Start).Methods("POST")
	router.HandleFunc("/api/client/{name}/{version}/stop", h.Stop).Methods("POST")
}

func (h Client) vars(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	vars := mux.Vars(r)
	version, err := GetVersion(vars["version"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", 0, false
	}
	return vars["name"], version, true
}

func (h Client) List(w http.ResponseWriter, r *http.Request) {
	items := make([]schema.DhcpClient, 0, 32)
	h.Dhcper.ListClient(func(obj schema.DhcpClient) {
		items = append(items, obj)
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ID() < items[j].ID()
	})
	ResponseJson(w, items)
}

func (h Client) Get(w http.ResponseWriter, r *http.Request) {
	name, version, ok := h.vars(w, r)
	if !ok {
		return
	}
	obj, err := h.Dhcper.GetClient(name, version)
	if err != nil {
		ResponseError(w, err)
		return
	}
	ResponseJson(w, obj)
}

func (h Client) Conf(w http.ResponseWriter, r *http.Request) {
	name, version, ok := h.vars(w, r)
	if !ok {
		return
	}
	text, err := h.Dhcper.RenderClient(name, version)
	if err != nil {
		ResponseError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(text))
}

func (h Client) Lease(w http.ResponseWriter, r *http.Request) {
	name, version, ok := h.vars(w, r)
	if !ok {
		return
	}
	text, err := h.Dhcper.LeaseClient(name, version)
	if err != nil {
		ResponseError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(text))
}

func (h Client) Start(w http.ResponseWriter, r *http.Request) {
	name, version, ok := h.vars(w, r)
	if !ok {
		return
	}
	if err := h.Dhcper.StartClient(name, version); err != nil {
		ResponseError(w, err)
		return
	}
	ResponseMsg(w, 0, "")
}

func (h Client) Stop(w http.ResponseWriter, r *http.Request) {
	name, version, ok := h.vars(w, r)
	if !ok {
		return
	}
	if err := h.Dhcper.StopClient(name, version); err != nil {
		ResponseError(w, err)
		return
	}
	ResponseMsg(w, 0, "")
}
