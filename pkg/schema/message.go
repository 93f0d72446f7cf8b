package schema

type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
