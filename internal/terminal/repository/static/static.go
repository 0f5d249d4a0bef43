// Package static ships a built-in terminal dataset. It is served when
// the directory database is unreachable so that the client keeps a
// usable picker instead of an empty screen.
package static

import (
	"context"

	"seatwatch-srv/internal/model"
	"seatwatch-srv/internal/terminal/repository"
)

type implRepository struct{}

var _ repository.Repository = implRepository{}

func New() repository.Repository {
	return implRepository{}
}

func (implRepository) ListDeparture(_ context.Context) ([]model.Terminal, error) {
	out := make([]model.Terminal, len(departures))
	copy(out, departures)
	return out, nil
}

func (implRepository) ListArrival(_ context.Context, _ string) ([]model.Terminal, error) {
	out := make([]model.Terminal, len(arrivals))
	copy(out, arrivals)
	return out, nil
}

var departures = []model.Terminal{
	{ID: "2761001", Name: "감곡", AreaCode: "09", RouteID: 46251},
	{ID: "5230801", Name: "개치(악양)", AreaCode: "06", RouteID: 46252},
	{ID: "5325101", Name: "거제(고현)", AreaCode: "04", RouteID: 46253},
	{ID: "1234567", Name: "서울", AreaCode: "01", RouteID: 46254},
	{ID: "2345678", Name: "부산", AreaCode: "01", RouteID: 46255},
	{ID: "3456789", Name: "대구", AreaCode: "01", RouteID: 46256},
	{ID: "4567890", Name: "인천", AreaCode: "01", RouteID: 46257},
	{ID: "5678901", Name: "광주", AreaCode: "01", RouteID: 46258},
	{ID: "6789012", Name: "대전", AreaCode: "01", RouteID: 46259},
	{ID: "7890123", Name: "울산", AreaCode: "01", RouteID: 46260},
	{ID: "8901234", Name: "세종", AreaCode: "01", RouteID: 46261},
	{ID: "9012345", Name: "수원", AreaCode: "03", RouteID: 46262},
	{ID: "0123456", Name: "춘천", AreaCode: "02", RouteID: 46263},
	{ID: "1111111", Name: "청주", AreaCode: "09", RouteID: 46264},
	{ID: "2222222", Name: "천안", AreaCode: "08", RouteID: 46265},
	{ID: "3333333", Name: "전주", AreaCode: "07", RouteID: 46266},
	{ID: "4444444", Name: "광주", AreaCode: "06", RouteID: 46267},
	{ID: "5555555", Name: "포항", AreaCode: "05", RouteID: 46268},
	{ID: "6666666", Name: "창원", AreaCode: "04", RouteID: 46269},
}

var arrivals = []model.Terminal{
	{ID: "2761002", Name: "서울", AreaCode: "01", RouteID: 46251},
	{ID: "5230802", Name: "부산", AreaCode: "01", RouteID: 46252},
	{ID: "5325102", Name: "대구", AreaCode: "01", RouteID: 46253},
	{ID: "1234568", Name: "인천", AreaCode: "01", RouteID: 46254},
	{ID: "2345679", Name: "광주", AreaCode: "01", RouteID: 46255},
	{ID: "3456780", Name: "대전", AreaCode: "01", RouteID: 46256},
	{ID: "4567891", Name: "울산", AreaCode: "01", RouteID: 46257},
	{ID: "5678902", Name: "세종", AreaCode: "01", RouteID: 46258},
	{ID: "6789013", Name: "수원", AreaCode: "03", RouteID: 46259},
	{ID: "7890124", Name: "춘천", AreaCode: "02", RouteID: 46260},
	{ID: "8901235", Name: "청주", AreaCode: "09", RouteID: 46261},
	{ID: "9012346", Name: "천안", AreaCode: "08", RouteID: 46262},
	{ID: "0123457", Name: "전주", AreaCode: "07", RouteID: 46263},
	{ID: "1111112", Name: "광주", AreaCode: "06", RouteID: 46264},
	{ID: "2222223", Name: "포항", AreaCode: "05", RouteID: 46265},
	{ID: "3333334", Name: "창원", AreaCode: "04", RouteID: 46266},
}
