package domain

// Stats aggregates a parse result for the end-of-run summary.
type Stats struct {
	Total          int
	Topics         int
	UniqueTopics   int
	Years          int // records carrying a year
	MinYear        int
	MaxYear        int
	ORSCites       int
	OARCites       int
	CaseCites      int
	PossibleErrors int
	Failures       int
}

// HasYears reports whether any record carried a year.
func (s Stats) HasYears() bool {
	return s.Years > 0
}

// ComputeStats aggregates the records and failures of a parse result.
func ComputeStats(result *ParseResult) Stats {
	stats := Stats{
		Total:    len(result.Records),
		Failures: len(result.Failures),
	}
	topics := make(map[string]struct{})
	for i := range result.Records {
		rec := &result.Records[i]
		if rec.Year != nil {
			y := *rec.Year
			if stats.Years == 0 || y < stats.MinYear {
				stats.MinYear = y
			}
			if stats.Years == 0 || y > stats.MaxYear {
				stats.MaxYear = y
			}
			stats.Years++
		}
		if rec.Topic != "" {
			stats.Topics++
			topics[rec.Topic] = struct{}{}
		}
		stats.ORSCites += len(rec.ORSCites)
		stats.OARCites += len(rec.OARCites)
		stats.CaseCites += len(rec.CaseCites)
		stats.PossibleErrors += len(rec.ErrorList)
	}
	stats.UniqueTopics = len(topics)
	return stats
}
