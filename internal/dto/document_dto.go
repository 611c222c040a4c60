package dto

// FieldUpdate is one path/value pair of a batch write.
type FieldUpdate struct {
	Path  string `json:"path" validate:"required"`
	Value any    `json:"value"`
}

type SetValuesRequest struct {
	Updates []FieldUpdate `json:"updates" validate:"required,min=1,dive"`
}

// UpdateResult reports one update's outcome independently of the rest of
// the batch: a failed path never hides or rolls back its neighbours.
type UpdateResult struct {
	Path    string `json:"path"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SetValuesResponse struct {
	Results []UpdateResult `json:"results"`
}

// CategoryProgressResponse renders one category's fill statistic. The
// percentage is "N/A" for categories without countable fields.
type CategoryProgressResponse struct {
	Percentage string `json:"percentage"`
	Filled     int    `json:"filled"`
	Total      int    `json:"total"`
}

type ProgressResponse struct {
	Categories map[string]CategoryProgressResponse `json:"categories"`
	Overall    CategoryProgressResponse            `json:"overall"`
}

type MissingFieldsResponse struct {
	Categories map[string][]string `json:"categories"`
}

type AddListItemRequest struct {
	Path string `json:"path" validate:"required"`
}

type AddListItemResponse struct {
	Index int `json:"index"`
}

type RemoveListItemRequest struct {
	Path  string `json:"path" validate:"required"`
	Index *int   `json:"index" validate:"required,min=0"`
}

// DocumentUpdatedMessage is the bus payload emitted after every mutation.
type DocumentUpdatedMessage struct {
	SessionID string `json:"session_id"`
	Operation string `json:"operation"`
}

type AllPathsResponse struct {
	FieldPaths []string `json:"field_paths"`
	ListPaths  []string `json:"list_paths"`
}
