package dto

// FetchRecordResponse is one entry of the fetch history
type FetchRecordResponse struct {
	ID            string `json:"id"`
	Account       string `json:"account"`
	Outcome       string `json:"outcome"`
	ErrorCode     string `json:"error_code,omitempty"`
	Message       string `json:"message,omitempty"`
	FetchedCount  int    `json:"fetched_count"`
	OriginalCount int    `json:"original_count"`
	FetchedAt     string `json:"fetched_at"`
}

// FetchHistoryResponse lists recent fetches, newest first
type FetchHistoryResponse struct {
	Records []*FetchRecordResponse `json:"records"`
}
