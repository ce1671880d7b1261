package models

// QueryRequest is the inbound payload for the query endpoint.
type QueryRequest struct {
	Question string `json:"question"`
}

// QueryResponse is the structured result returned for every pipeline run,
// success or failure. SQLQuery, Method and Error are null when absent;
// Results, RowCount and Columns are populated only on success.
type QueryResponse struct {
	Success  bool                     `json:"success"`
	Question string                   `json:"question"`
	SQLQuery *string                  `json:"sql_query"`
	Method   *string                  `json:"method"`
	Results  []map[string]interface{} `json:"results"`
	RowCount int                      `json:"row_count"`
	Columns  []string                 `json:"columns"`
	Error    *string                  `json:"error"`
}
