package tmdb

import "encoding/json"

// searchHit is one raw result from the TMDB search endpoint. VoteAverage is
// kept as json.Number so the rating string reaches the record exactly as
// the API sent it, without rounding.
type searchHit struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	ReleaseDate string      `json:"release_date"`
	Overview    string      `json:"overview"`
	PosterPath  string      `json:"poster_path"`
	VoteAverage json.Number `json:"vote_average"`
}

type searchResponse struct {
	Results []searchHit `json:"results"`
}

type creditsResponse struct {
	Crew []crewMember `json:"crew"`
}

type crewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}
