package http

import (
	"seatwatch-srv/internal/terminal"
)

type terminalItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AreaCode string `json:"areaCode"`
	RouteID  int    `json:"routeId"`
}

// directoryResp is the payload inside the response envelope. The client
// reads data.terminalList; degraded is advisory and omitted when false.
type directoryResp struct {
	TerminalList []terminalItem `json:"terminalList"`
	Degraded     bool           `json:"degraded,omitempty"`
}

func newDirectoryResp(out terminal.DirectoryOutput) directoryResp {
	items := make([]terminalItem, 0, len(out.Terminals))
	for _, t := range out.Terminals {
		items = append(items, terminalItem{
			ID:       t.ID,
			Name:     t.Name,
			AreaCode: t.AreaCode,
			RouteID:  t.RouteID,
		})
	}
	return directoryResp{
		TerminalList: items,
		Degraded:     out.Degraded,
	}
}
