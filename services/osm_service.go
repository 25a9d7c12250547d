package services

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/12Danish/NextRepBackend-sub000/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// A previous search this close to the requested origin, and this
	// fresh, is reused instead of re-querying Overpass.
	gymCacheProximityM = 2000.0
	gymCacheTTL        = 24 * time.Hour
	defaultGymRadiusM  = 5000.0
)

type OSMService struct {
	db     *gorm.DB
	client *http.Client
}

func NewOSMService(db *gorm.DB) *OSMService {
	return &OSMService{
		db:     db,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type overpassResponse struct {
	Elements []struct {
		Type   string  `json:"type"`
		ID     int64   `json:"id"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
		Center *struct {
			Lat float64 `json:"lat"`
			Lon float64 `json:"lon"`
		} `json:"center"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// haversineM is the great-circle distance between two points in meters.
func haversineM(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusM = 6371000
	rad := func(d float64) float64 { return d * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// NearbyGyms returns gyms around (lat, lon), serving from the local
// cache when a fresh previous search covered roughly the same area.
func (s *OSMService) NearbyGyms(lat, lon, radiusM float64) ([]models.GymLocation, error) {
	if radiusM <= 0 {
		radiusM = defaultGymRadiusM
	}

	if s.cachedSearchCovers(lat, lon, radiusM) {
		return s.gymsFromCache(lat, lon, radiusM)
	}

	gyms, err := s.fetchFromOverpass(lat, lon, radiusM)
	if err != nil {
		return nil, err
	}

	for i := range gyms {
		gym := gyms[i]
		// upsert by OSM id so repeated fetches refresh instead of duplicate
		s.db.Where("osm_id = ?", gym.OsmID).Assign(gym).FirstOrCreate(&gyms[i])
	}
	s.db.Create(&models.GymSearch{Lat: lat, Lon: lon, RadiusM: radiusM, FetchedAt: time.Now()})

	return gyms, nil
}

func (s *OSMService) cachedSearchCovers(lat, lon, radiusM float64) bool {
	var searches []models.GymSearch
	if err := s.db.
		Where("fetched_at > ? AND radius_m >= ?", time.Now().Add(-gymCacheTTL), radiusM).
		Find(&searches).Error; err != nil {
		return false
	}
	for _, prev := range searches {
		if haversineM(lat, lon, prev.Lat, prev.Lon) <= gymCacheProximityM {
			return true
		}
	}
	return false
}

func (s *OSMService) gymsFromCache(lat, lon, radiusM float64) ([]models.GymLocation, error) {
	// bounding-box prefilter, exact distance check after
	latDelta := radiusM / 111320.0
	lonDelta := radiusM / (111320.0 * math.Cos(lat*math.Pi/180))

	var gyms []models.GymLocation
	if err := s.db.
		Where("lat BETWEEN ? AND ? AND lon BETWEEN ? AND ?",
			lat-latDelta, lat+latDelta, lon-lonDelta, lon+lonDelta).
		Find(&gyms).Error; err != nil {
		return nil, err
	}

	out := gyms[:0]
	for _, g := range gyms {
		if haversineM(lat, lon, g.Lat, g.Lon) <= radiusM {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *OSMService) fetchFromOverpass(lat, lon, radiusM float64) ([]models.GymLocation, error) {
	query := fmt.Sprintf(
		`[out:json][timeout:10];(node["leisure"="fitness_centre"](around:%.0f,%f,%f);way["leisure"="fitness_centre"](around:%.0f,%f,%f););out center;`,
		radiusM, lat, lon, radiusM, lat, lon,
	)

	resp, err := s.client.PostForm("https://overpass-api.de/api/interpreter",
		url.Values{"data": {query}})
	if err != nil {
		return nil, fmt.Errorf("failed to call Overpass API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read Overpass response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass API error %d: %s", resp.StatusCode, string(body))
	}

	var or overpassResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, fmt.Errorf("failed to parse Overpass JSON: %w", err)
	}

	now := time.Now()
	gyms := make([]models.GymLocation, 0, len(or.Elements))
	for _, el := range or.Elements {
		gLat, gLon := el.Lat, el.Lon
		if el.Center != nil { // ways carry coordinates in "center"
			gLat, gLon = el.Center.Lat, el.Center.Lon
		}
		name := el.Tags["name"]
		if name == "" {
			name = "Unnamed gym"
		}
		gyms = append(gyms, models.GymLocation{
			OsmID:     el.ID,
			Name:      name,
			Lat:       gLat,
			Lon:       gLon,
			Address:   formatOSMAddress(el.Tags),
			FetchedAt: now,
		})
	}

	log.WithField("count", len(gyms)).Debug("fetched gyms from Overpass")
	return gyms, nil
}

func formatOSMAddress(tags map[string]string) string {
	street := tags["addr:street"]
	number := tags["addr:housenumber"]
	city := tags["addr:city"]

	addr := street
	if number != "" && addr != "" {
		addr += " " + number
	}
	if city != "" {
		if addr != "" {
			addr += ", "
		}
		addr += city
	}
	return addr
}
