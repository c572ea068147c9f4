package model

const (
	ChainICON Chain = "icon"
)

const (
	// TerminateOnStatus stops on 204, on an empty page, and on any other non-200 status.
	TerminateOnStatus TerminationPolicy = "status"
	// TerminateOnEmptyPage stops only on an empty page; unexpected statuses are fetch errors.
	TerminateOnEmptyPage TerminationPolicy = "empty-page"
)

const (
	NameStyleISO  NameStyle = "iso"
	NameStyleUnix NameStyle = "unix"
)

type (
	Chain             string
	TerminationPolicy string
	// NameStyle selects how run parameters appear in the output file name and document.
	NameStyle string
)

func (p TerminationPolicy) Valid() bool {
	return p == TerminateOnStatus || p == TerminateOnEmptyPage
}

func (s NameStyle) Valid() bool {
	return s == NameStyleISO || s == NameStyleUnix
}
