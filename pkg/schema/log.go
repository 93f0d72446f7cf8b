package schema

import "github.com/luscis/ifdhcp/pkg/libol"

type Log struct {
	File  string `json:"file"`
	Level int    `json:"level"`
}

func NewLogSchema() Log {
	return Log{
		File:  libol.Logger.FileName,
		Level: libol.Logger.Level,
	}
}

type LogMessage struct {
	Level   string `json:"level"`
	Date    string `json:"date"`
	Module  string `json:"module"`
	Message string `json:"message"`
}

// ListLogMessage returns at most size saved messages, newest first.
func ListLogMessage(size int) []LogMessage {
	items := make([]LogMessage, 0, 32)
	for m := range libol.Logger.List() {
		if m == nil {
			break
		}
		if len(items) < size {
			items = append(items, LogMessage{
				Level:   m.Level,
				Date:    m.Date,
				Module:  m.Module,
				Message: m.Message,
			})
		}
	}
	return items
}
