package tmsapi

// Raw payload shapes as the listings API returns them. Only the fields the
// pipeline reads are declared; everything else in the payload is ignored.

type TheatreRef struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Showtime struct {
	Theatre *TheatreRef `json:"theatre"`
}

type Showing struct {
	Title            string     `json:"title"`
	ReleaseYear      string     `json:"releaseYear"`
	ShortDescription string     `json:"shortDescription"`
	Genres           []string   `json:"genres"`
	Showtimes        []Showtime `json:"showtimes"`
}

type Program struct {
	Title            string   `json:"title"`
	ReleaseYear      string   `json:"releaseYear"`
	ShortDescription string   `json:"shortDescription"`
	Genres           []string `json:"genres"`
}

// An airing wraps its movie attributes in a program sub-object. Airings
// without one carry no usable movie data.
type Airing struct {
	Program  *Program `json:"program"`
	Channels []string `json:"channels"`
}
