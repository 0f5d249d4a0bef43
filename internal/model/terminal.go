package model

// Terminal is one bus terminal, grouped by area code.
// Immutable reference data; identity = ID.
type Terminal struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AreaCode string `json:"areaCode"`
	RouteID  int    `json:"routeId"`
}

// Area codes map to fixed region names; unknown codes fall into AreaNameOther.
const AreaNameOther = "기타"

var areaNames = map[string]string{
	"01": "수도권",
	"02": "강원",
	"03": "경기",
	"04": "경남",
	"05": "경북",
	"06": "전남",
	"07": "전북",
	"08": "충남",
	"09": "충북",
}

// AreaName resolves an area code to its region name.
func AreaName(code string) string {
	if name, ok := areaNames[code]; ok {
		return name
	}
	return AreaNameOther
}
