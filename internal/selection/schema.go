package selection

// selectionSchema defines the selection table. Identity is the
// (provider, movie_id) pair; ids are only unique within one provider.
const selectionSchema = `
CREATE TABLE IF NOT EXISTS selection (
	provider TEXT NOT NULL,
	movie_id TEXT NOT NULL,
	title TEXT NOT NULL,
	year TEXT NOT NULL,
	summary TEXT NOT NULL,
	poster_url TEXT NOT NULL DEFAULT '',
	rating TEXT NOT NULL,
	director TEXT NOT NULL,
	added_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (provider, movie_id)
);

CREATE INDEX IF NOT EXISTS idx_selection_added_at ON selection(added_at);
`
