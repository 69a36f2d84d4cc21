package catalog

import "gorm.io/datatypes"

type Project struct {
	ID          string          `gorm:"column:project_id;primaryKey;size:10" json:"id"`
	ReleaseDate *datatypes.Date `gorm:"column:release_date" json:"release_date,omitempty"`
	Description string          `gorm:"column:description;type:text" json:"description"`
	Type        string          `gorm:"column:type;size:50" json:"type"`
	Title       string          `gorm:"column:title;size:200;index" json:"title"`
	SongLink    string          `gorm:"column:song_link;type:text" json:"song_link"`
	AlbumArt    string          `gorm:"column:album_art;type:text" json:"album_art"`
}

func (Project) TableName() string { return "projects" }

type Artist struct {
	ID            string  `gorm:"column:artist_id;primaryKey;size:10" json:"id"`
	Name          string  `gorm:"column:name;size:100;not null;index" json:"name"`
	PhotoURL      string  `gorm:"column:photo_url;type:text" json:"photo_url"`
	LastProjectID *string `gorm:"column:last_project_id;size:10" json:"last_project_id,omitempty"`
}

func (Artist) TableName() string { return "artists" }

type Production struct {
	ID            string  `gorm:"column:production_id;primaryKey;size:10" json:"id"`
	Name          string  `gorm:"column:name;size:150;not null;index" json:"name"`
	LogoURL       string  `gorm:"column:logo_url;type:text" json:"logo_url"`
	MarketValue   *int64  `gorm:"column:market_value" json:"market_value,omitempty"`
	LastProjectID *string `gorm:"column:last_project_id;size:10" json:"last_project_id,omitempty"`
}

func (Production) TableName() string { return "productions" }

type Distributor struct {
	ID          string `gorm:"column:distributor_id;primaryKey;size:10" json:"id"`
	Name        string `gorm:"column:name;size:150;not null;index" json:"name"`
	LogoURL     string `gorm:"column:logo_url;type:text" json:"logo_url"`
	URL         string `gorm:"column:url;type:text" json:"url"`
	MarketValue *int64 `gorm:"column:market_value" json:"market_value,omitempty"`
}

func (Distributor) TableName() string { return "distributors" }

// Collaboration is one (artist, production, distributor, project) tuple working
// together. It is the only edge between the four named kinds.
type Collaboration struct {
	ID            string `gorm:"column:colab_id;primaryKey;size:10" json:"id"`
	ArtistID      string `gorm:"column:artist_id;size:10;not null;index" json:"artist_id"`
	ProductionID  string `gorm:"column:production_id;size:10;not null;index" json:"production_id"`
	DistributorID string `gorm:"column:distributor_id;size:10;not null;index" json:"distributor_id"`
	ProjectID     string `gorm:"column:project_id;size:10;not null;index" json:"project_id"`
}

func (Collaboration) TableName() string { return "collaborations" }

// EndpointID returns the id this row holds for kind k.
func (c Collaboration) EndpointID(k Kind) string {
	switch k {
	case KindArtist:
		return c.ArtistID
	case KindProduction:
		return c.ProductionID
	case KindDistributor:
		return c.DistributorID
	case KindProject:
		return c.ProjectID
	}
	return ""
}

// ViewSnapshot is one immutable view-count reading. Several rows may share a
// (project, recorded_date) pair.
type ViewSnapshot struct {
	ID           string          `gorm:"column:stat_id;primaryKey;size:10" json:"id"`
	ProjectID    string          `gorm:"column:project_id;size:10;not null;index" json:"project_id"`
	ViewsCount   int64           `gorm:"column:views_count" json:"views_count"`
	RecordedDate *datatypes.Date `gorm:"column:recorded_date" json:"recorded_date,omitempty"`
}

func (ViewSnapshot) TableName() string { return "views" }

type Ranking struct {
	ID       string `gorm:"column:ranking_id;primaryKey;size:10" json:"id"`
	ArtistID string `gorm:"column:artist_id;size:10;not null;index" json:"artist_id"`
	Position int    `gorm:"column:ranking_position" json:"position"`
}

func (Ranking) TableName() string { return "rankings" }

type CalendarEvent struct {
	ID          string          `gorm:"column:event_id;primaryKey;size:10" json:"id"`
	ArtistID    string          `gorm:"column:artist_id;size:10;not null;index" json:"artist_id"`
	EventDate   *datatypes.Date `gorm:"column:event_date" json:"event_date,omitempty"`
	Description string          `gorm:"column:description;type:text" json:"description"`
}

func (CalendarEvent) TableName() string { return "artist_calendar" }
