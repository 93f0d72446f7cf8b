package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/luscis/ifdhcp/pkg/dhcpc"
	"github.com/luscis/ifdhcp/pkg/libol"
	"github.com/luscis/ifdhcp/pkg/schema"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func ResponseJson(w http.ResponseWriter, v interface{}) {
	str, err := json.Marshal(v)
	if err == nil {
		libol.Debug("ResponseJson: %s", str)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(str)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ResponseMsg(w http.ResponseWriter, code int, message string) {
	ret := &schema.Message{
		Code:    code,
		Message: message,
	}
	ResponseJson(w, ret)
}

func ResponseYaml(w http.ResponseWriter, v interface{}) {
	str, err := yaml.Marshal(v)
	if err == nil {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(str)
	} else {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// ResponseError maps client errors to a status code.
func ResponseError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, dhcpc.ErrNotFound) {
		code = http.StatusNotFound
	} else if dhcpc.IsConfig(err) {
		code = http.StatusBadRequest
	}
	http.Error(w, err.Error(), code)
}

func GetData(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func GetQueryOne(req *http.Request, name string) string {
	query := req.URL.Query()
	if values, ok := query[name]; ok {
		return values[0]
	}
	return ""
}

func GetVersion(value string) (int, error) {
	version, err := strconv.Atoi(value)
	if err != nil || (version != 4 && version != 6) {
		return 0, libol.NewErr("invalid version %s", value)
	}
	return version, nil
}
