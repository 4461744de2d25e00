// Package mrtguide finds commute routes across a rail network.
//
// Stations come from a CSV file; each station code ("NS1") fixes its line and
// its place on that line, and stations sharing a name form an interchange.
// Routes are ranked by a cost policy chosen from the departure time:
//
//	no time given        → uniform (count the stops)
//	weekday 06–09, 18–21 → peak    (slow NS/NE, costly transfers)
//	22–06, every day     → night   (DT, CG and CE closed)
//	otherwise            → normal  (fast DT/TE)
//
// Packages, leaf first:
//
//	station/     Station parsed from its code
//	core/        thread-safe adjacency set
//	weights/     cost policies and the time-based selector
//	reader/      station CSV decoding, opening-date filter
//	mrtmap/      the rail graph and its ranked route search
//	pathfinder/  query entry point: time parsing, limits, LRU cache
//	formatter/   console, styled and JSON output
//	config/      YAML configuration
//	app/         interactive session loop
//	cmd/mrtguide the CLI
//
// Quick ASCII example:
//
//	NS1 ─── NS2          two lines meeting at both ends:
//	 ┊       ┊           ─── ride (cost from the policy)
//	TE1 ─── TE2          ┊   transfer inside an interchange
//
//	go run ./cmd/mrtguide route "Jurong East" "Bukit Batok" --at 2019-06-19T08:00
package mrtguide
