package network

type Link struct {
	Name   string `json:"name"`
	Index  int    `json:"index"`
	Mtu    int    `json:"mtu"`
	HwAddr string `json:"hwAddr,omitempty"`
	State  string `json:"state"`
}
