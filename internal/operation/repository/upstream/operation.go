package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/operation"
	pkgErrors "seatwatch-srv/pkg/errors"
)

type fetchResponse struct {
	OperationMap model.OperationMap `json:"operationMap"`
}

func (repo implUpstream) FetchByRoute(ctx context.Context, routeID int) (model.OperationMap, error) {
	url := fmt.Sprintf("%s/operations?routeId=%d", repo.baseURL, routeID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		repo.l.Errorf(ctx, "internal.operation.repository.upstream.FetchByRoute.NewRequest: %v", err)
		return nil, err
	}

	resp, err := repo.client.Do(req)
	if err != nil {
		return nil, pkgErrors.NewTransientError("operation.upstream.fetch", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, operation.ErrRouteNotFound
	case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
		return nil, pkgErrors.NewTransientError("operation.upstream.fetch",
			fmt.Errorf("upstream status %d", resp.StatusCode))
	default:
		return nil, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var body fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		repo.l.Errorf(ctx, "internal.operation.repository.upstream.FetchByRoute.Decode: %v", err)
		return nil, err
	}

	return normalize(body.OperationMap, routeID), nil
}

// normalize stamps the route and date onto each operation. The provider
// keys by date and omits both fields from the items themselves.
func normalize(ops model.OperationMap, routeID int) model.OperationMap {
	for date, list := range ops {
		for i := range list {
			list[i].RouteID = routeID
			list[i].Date = date
		}
		ops[date] = list
	}
	return ops
}
