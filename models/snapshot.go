package models

// Snapshot is the read-only view of the sync engine's observable state that
// consumers (the dashboard UI, tests) receive. It is a value copy: mutating a
// snapshot never affects the engine.
type Snapshot struct {
	// Servers is the current page of the server list.
	Servers []Server

	// AllServers is the full unpaginated server set from the last
	// reconciliation that fetched it successfully.
	AllServers []Server

	// Pagination describes Servers' position in the full list, nil when the
	// last paginated fetch failed or carried no pagination metadata.
	Pagination *PaginationInfo

	// CurrentPage and ServersPerPage echo the query parameters the engine
	// is currently fetching with.
	CurrentPage    int
	ServersPerPage int

	// IsLoading reports whether a reconciliation is in flight.
	IsLoading bool

	// FetchAttempts is the number of consecutive failed attempts in the
	// current startup episode. Zero after any success and in normal polling.
	FetchAttempts int

	// Err is the classified error of the last failed reconciliation or
	// mutation, nil when the last operation succeeded.
	Err error
}
