package omdb

// searchHit is one raw result from the OMDb bulk search endpoint. The bulk
// endpoint omits plot, rating and director, which is why every hit needs a
// follow-up detail call.
type searchHit struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	ImdbID string `json:"imdbID"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search   []searchHit `json:"Search"`
	Response string      `json:"Response"` // "True" or "False"
	Error    string      `json:"Error"`    // present when Response is "False"
}

// detailResponse is the full record returned by the by-id endpoint.
type detailResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Plot       string `json:"Plot"`
	Poster     string `json:"Poster"`
	Director   string `json:"Director"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}
