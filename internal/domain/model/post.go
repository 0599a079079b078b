package model

import "time"

// Region is one of the seven regions of Kyrgyzstan a post is tagged with.
type Region string

const (
	RegionChui      Region = "chui"
	RegionTalas     Region = "talas"
	RegionNaryn     Region = "naryn"
	RegionIssykKul  Region = "issyk-kul"
	RegionJalalAbad Region = "jalal-abad"
	RegionOsh       Region = "osh"
	RegionBatken    Region = "batken"
)

// Season tags a post with the season it showcases.
type Season string

const (
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
)

func (r Region) Valid() bool {
	switch r {
	case RegionChui, RegionTalas, RegionNaryn, RegionIssykKul,
		RegionJalalAbad, RegionOsh, RegionBatken:
		return true
	}

	return false
}

func (s Season) Valid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonAutumn:
		return true
	}

	return false
}

// Post is the persisted content unit: one showcase entry per month/region,
// with an uploaded video stored as an object in blob storage.
//
// VideoFile names the blob object. It is nil until a video has been uploaded
// and is only ever changed by a successful create or replace-video operation,
// never by the text-edit path.
type Post struct {
	ID        int64     `bson:"id"`
	CreatedAt time.Time `bson:"created_at"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	Fact      string    `bson:"fact"`
	Region    Region    `bson:"region"`
	Season    Season    `bson:"season"`
	MapRegion Region    `bson:"map_region"`
	MapURL    *string   `bson:"map_url"`
	VideoFile *string   `bson:"video_file"`
}
