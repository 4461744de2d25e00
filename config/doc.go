// Package config loads the mrtguide YAML configuration.
//
// Example config.yml:
//
//	data_path: ./data/StationMap.csv
//	limit: 3
//	formatter: styled      # console | styled | json
//	log_level: info        # debug | info | warn | error
//	cache_size: 128        # 0 disables the query cache
//	opened_by: 2019-12-31  # model the network as of this date
//	lines:
//	  peak_busy: [NS, NE]
//	  night_stop: [DT, CG, CE]
//	  night_fast: [TE]
//	  normal_fast: [DT, TE]
//
// Values are validated with go-playground/validator struct tags.
package config
