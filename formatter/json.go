package formatter

import (
	"encoding/json"

	"github.com/katalvlaran/mrtguide/mrtmap"
)

// JSON renders the result as a JSON document.
type JSON struct {
	// Indent, when non-empty, pretty-prints with this indent.
	Indent string
}

type jsonResult struct {
	Start  string      `json:"start"`
	End    string      `json:"end"`
	Routes []jsonRoute `json:"routes"`
}

type jsonRoute struct {
	Cost     int64         `json:"cost"`
	Hops     int           `json:"hops"`
	Stations []jsonStation `json:"stations"`
}

type jsonStation struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Line string `json:"line"`
}

// Format implements Formatter. Costs are always included.
func (j JSON) Format(start, end string, routes []mrtmap.Route, opts Options) string {
	res := jsonResult{Start: start, End: end, Routes: make([]jsonRoute, 0, len(routes))}
	for _, r := range shown(routes, opts) {
		jr := jsonRoute{Cost: r.Cost, Hops: r.Hops(), Stations: make([]jsonStation, len(r.Stations))}
		for i, s := range r.Stations {
			jr.Stations[i] = jsonStation{Code: s.Code, Name: s.Name, Line: s.Line}
		}
		res.Routes = append(res.Routes, jr)
	}

	var b []byte
	if j.Indent != "" {
		b, _ = json.MarshalIndent(res, "", j.Indent)
	} else {
		b, _ = json.Marshal(res)
	}

	return string(b)
}
