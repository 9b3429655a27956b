package search

// QueryError records a failed pool query.
type QueryError struct {
	Query Query
	Err   error
}

func (e *QueryError) Error() string {
	return "query " + e.Query.String() + ": " + e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
