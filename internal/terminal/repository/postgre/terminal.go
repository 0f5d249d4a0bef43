package postgre

import (
	"context"
	"database/sql"

	"seatwatch-srv/internal/model"
)

const listDepartureQuery = `
	SELECT DISTINCT ON (t.id) t.id, t.name, t.area_code, r.id
	FROM terminals t
	JOIN routes r ON r.departure_id = t.id
	ORDER BY t.id, r.id`

func (repo implRepository) ListDeparture(ctx context.Context) ([]model.Terminal, error) {
	rows, err := repo.db.QueryContext(ctx, listDepartureQuery)
	if err != nil {
		repo.l.Errorf(ctx, "internal.terminal.repository.postgre.ListDeparture.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	return scanTerminals(rows)
}

const listArrivalQuery = `
	SELECT t.id, t.name, t.area_code, r.id
	FROM routes r
	JOIN terminals t ON t.id = r.arrival_id
	WHERE r.departure_id = $1
	ORDER BY t.name`

func (repo implRepository) ListArrival(ctx context.Context, departureID string) ([]model.Terminal, error) {
	rows, err := repo.db.QueryContext(ctx, listArrivalQuery, departureID)
	if err != nil {
		repo.l.Errorf(ctx, "internal.terminal.repository.postgre.ListArrival.QueryContext: %v", err)
		return nil, err
	}
	defer rows.Close()

	return scanTerminals(rows)
}

func scanTerminals(rows *sql.Rows) ([]model.Terminal, error) {
	var terminals []model.Terminal
	for rows.Next() {
		var t model.Terminal
		if err := rows.Scan(&t.ID, &t.Name, &t.AreaCode, &t.RouteID); err != nil {
			return nil, err
		}
		terminals = append(terminals, t)
	}
	return terminals, rows.Err()
}
