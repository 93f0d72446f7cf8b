package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/luscis/ifdhcp/cmd/api"
	"github.com/luscis/ifdhcp/pkg/libol"
)

type Client struct {
	Auth libol.Auth
}

func (cl Client) NewRequest(url string) *libol.HttpClient {
	return &libol.HttpClient{
		Auth: libol.Auth{
			Type:     "basic",
			Username: cl.Auth.Username,
			Password: cl.Auth.Password,
		},
		Url: url,
	}
}

func (cl Client) Do(client *libol.HttpClient) ([]byte, error) {
	out := cl.Log()
	out.Debug("Client.Do -> %s %s", client.Method, client.Url)
	r, err := client.Do()
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	out.Debug("Client.Do <- %s", string(body))
	if r.StatusCode != http.StatusOK {
		return nil, libol.NewErr("%s %s", r.Status, bytes.TrimSpace(body))
	}
	return body, nil
}

func (cl Client) GetBody(url string) ([]byte, error) {
	client := cl.NewRequest(url)
	client.Method = "GET"
	return cl.Do(client)
}

func (cl Client) JSON(client *libol.HttpClient, i, o interface{}) error {
	if i != nil {
		data, err := json.Marshal(i)
		if err != nil {
			return err
		}
		client.Payload = bytes.NewReader(data)
	}
	body, err := cl.Do(client)
	if err != nil {
		return err
	}
	if o != nil {
		return json.Unmarshal(body, o)
	}
	return nil
}

func (cl Client) GetJSON(url string, v interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "GET"
	return cl.JSON(client, nil, v)
}

func (cl Client) PostJSON(url string, i, o interface{}) error {
	client := cl.NewRequest(url)
	client.Method = "POST"
	return cl.JSON(client, i, o)
}

func (cl Client) Log() *libol.SubLogger {
	return libol.NewSubLogger("cli")
}

type Cmd struct {
}

func (c Cmd) NewHttp(token string) Client {
	return Client{
		Auth: libol.Auth{
			Username: token,
		},
	}
}

func (c Cmd) Out(data interface{}, format string, tmpl string) error {
	return api.Out(data, format, tmpl)
}
