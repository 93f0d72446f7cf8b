package schema

type DhcpFiles struct {
	Conf     string `json:"conf"`
	Pid      string `json:"pid"`
	Lease    string `json:"lease"`
	AcceptRA string `json:"acceptRa,omitempty"`
}

type DhcpClient struct {
	Name          string    `json:"name"`
	Version       int       `json:"version"`
	State         string    `json:"state"`
	Pid           int       `json:"pid,omitempty"`
	Running       bool      `json:"running"`
	Link          string    `json:"link,omitempty"`
	Hostname      string    `json:"hostname,omitempty"`
	ClientId      string    `json:"clientId,omitempty"`
	VendorClassId string    `json:"vendorClassId,omitempty"`
	ParamsOnly    bool      `json:"paramsOnly,omitempty"`
	Temporary     bool      `json:"temporary,omitempty"`
	Files         DhcpFiles `json:"files"`
}

func (d DhcpClient) ID() string {
	if d.Version == 6 {
		return d.Name + "/6"
	}
	return d.Name + "/4"
}
