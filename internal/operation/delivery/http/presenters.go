package http

import (
	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
)

// catalogResp is the payload inside the response envelope. The client
// reads data.operationMap keyed by YYYY-MM-DD.
type catalogResp struct {
	OperationMap model.OperationMap `json:"operationMap"`
	Stale        bool               `json:"stale,omitempty"`
}

func newCatalogResp(out operation.CatalogOutput) catalogResp {
	ops := out.Operations
	if ops == nil {
		ops = model.OperationMap{}
	}
	return catalogResp{
		OperationMap: ops,
		Stale:        out.Stale,
	}
}
