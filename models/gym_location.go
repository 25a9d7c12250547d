package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GymLocation is a gym/fitness centre fetched from OpenStreetMap and
// cached locally so nearby repeat searches skip the Overpass API.
type GymLocation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OsmID     int64     `gorm:"uniqueIndex" json:"osm_id"`
	Name      string    `gorm:"size:256" json:"name"`
	Lat       float64   `gorm:"index" json:"lat"`
	Lon       float64   `gorm:"index" json:"lon"`
	Address   string    `gorm:"size:512" json:"address"`
	FetchedAt time.Time `json:"fetched_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *GymLocation) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// GymSearch remembers the origin of a previous Overpass query; searches
// close enough to a fresh origin are served from cached GymLocations.
type GymSearch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	RadiusM   float64   `json:"radius_m"`
	FetchedAt time.Time `gorm:"index" json:"fetched_at"`
}

func (g *GymSearch) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
