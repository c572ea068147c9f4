package model

type (
	// TimeRange is a window of Unix timestamps in seconds.
	TimeRange struct {
		Start int64
		End   int64
	}

	BlockRange struct {
		From int64
		To   int64
	}
)
