package terminal

import "seatwatch-srv/internal/model"

// DirectoryOutput is a terminal listing. Degraded is set when the
// directory source was unavailable and the built-in sample set was
// served instead (deliberate offline resilience, never silent).
type DirectoryOutput struct {
	Terminals []model.Terminal
	Degraded  bool
}

// GroupByArea buckets the listing by region name for the client's
// sectioned picker. Unknown area codes fall into the "other" bucket.
func (o DirectoryOutput) GroupByArea() map[string][]model.Terminal {
	groups := make(map[string][]model.Terminal)
	for _, t := range o.Terminals {
		name := model.AreaName(t.AreaCode)
		groups[name] = append(groups[name], t)
	}
	return groups
}
