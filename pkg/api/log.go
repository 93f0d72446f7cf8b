package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/schema"
)

type Log struct {
}

func (l Log) Router(router *mux.Router) {
	router.HandleFunc("/api/log", l.List).Methods("GET")
	router.HandleFunc("/api/log", l.Add).Methods("POST")
	router.HandleFunc("/api/log/message", l.Message).Methods("GET")
}

func (l Log) List(w http.ResponseWriter, r *http.Request) {
	ResponseJson(w, schema.NewLogSchema())
}

func (l Log) Add(w http.ResponseWriter, r *http.Request) {
	log := &schema.Log{}
	if err := GetData(r, log); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	libol.SetLevel(log.Level)
	ResponseMsg(w, 0, "")
}

func (l Log) Message(w http.ResponseWriter, r *http.Request) {
	size := 100
	if value := GetQueryOne(r, "size"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			size = n
		}
	}
	ResponseJson(w, schema.ListLogMessage(size))
}
