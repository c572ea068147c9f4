package model

type (
	// Transaction keeps only the fields of a tracker transaction record we read.
	Transaction struct {
		FromAddress string `json:"from_address"`
	}

	// TransactionPage is one limit/skip slice of the tracker's transaction listing.
	TransactionPage struct {
		StatusCode   int
		Transactions []Transaction
	}
)
