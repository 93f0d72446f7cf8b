package libol

import (
	"crypto/tls"
	"encoding/base64"
	"io"
	"net/http"
	"time"
)

type Auth struct {
	Type     string
	Username string
	Password string
}

func BasicAuth(username, password string) string {
	auth := username + ":"
	if password != "" {
		auth += password
	}
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(auth))
}

type HttpClient struct {
	Method    string
	Url       string
	Payload   io.Reader
	Auth      Auth
	TlsConfig *tls.Config
	Timeout   time.Duration
	Client    *http.Client
}

func (cl *HttpClient) Do() (*http.Response, error) {
	if cl.Method == "" {
		cl.Method = "GET"
	}
	if cl.TlsConfig == nil {
		cl.TlsConfig = &tls.Config{InsecureSkipVerify: true}
	}
	if cl.Timeout == 0 {
		cl.Timeout = 30 * time.Second
	}
	req, err := http.NewRequest(cl.Method, cl.Url, cl.Payload)
	if err != nil {
		return nil, err
	}
	if cl.Auth.Type == "basic" {
		req.Header.Set("Authorization", BasicAuth(cl.Auth.Username, cl.Auth.Password))
	}
	cl.Client = &http.Client{
		Timeout: cl.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: cl.TlsConfig,
		},
	}
	return cl.Client.Do(req)
}

func (cl *HttpClient) Close() {
	if cl.Client != nil {
		cl.Client.CloseIdleConnections()
	}
}
