package qdrant

// CreateCollectionRequest configures a new vector collection.
type CreateCollectionRequest struct {
	Name    string        `json:"-"`
	Vectors VectorsConfig `json:"vectors"`
}

// VectorsConfig is the vector layout of a collection.
type VectorsConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point is a vector plus its payload.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// UpsertPointsRequest inserts or updates points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is a nearest-neighbor query.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// Filter restricts search results by payload fields.
type Filter struct {
	Must []FieldMatch `json:"must,omitempty"`
}

// FieldMatch matches a payload field against an exact value.
type FieldMatch struct {
	Key   string     `json:"key"`
	Match MatchValue `json:"match"`
}

// MatchValue is the value side of a field match.
type MatchValue struct {
	Value interface{} `json:"value"`
}

// ScoredPoint is one search hit.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float32                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

type searchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// DeletePointsRequest removes points by ID.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
