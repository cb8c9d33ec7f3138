package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/dto"
	"ai-health-be/internal/entity"
	"ai-health-be/internal/pkg/logger"
	"ai-health-be/internal/repository/specification"
	"ai-health-be/internal/repository/unitofwork"
	"ai-health-be/pkg/geo"
)

const (
	tierOneMinKm = 1.0
	tierOneMaxKm = 7.0
	tierTwoMinKm = 10.0
	tierTwoMaxKm = 15.0

	maxRecommended   = 3
	maxNoLocation    = 5
	maxBroadSample   = 20
	placeholderName  = "Unknown"
	placeholderField = "Not specified"
)

type IDoctorService interface {
	Recommend(ctx context.Context, req *dto.DoctorRecommendRequest) ([]dto.RecommendedDoctor, error)
	Directions(req *dto.DirectionsRequest) *dto.DirectionsResponse
}

// doctorService looks up nearby doctors for a disease. Directory candidates
// are banded into two distance tiers around the caller; when both tiers are
// empty the inference provider is asked for real-world doctors, whose
// coordinates are re-checked against the first band because the model is not
// trusted to have honored the constraint. Every failure along the way means
// fewer results, never an error to the caller.
type doctorService struct {
	uowFactory unitofwork.RepositoryFactory
	gen        TextGenerator
	log        logger.ILogger
}

// TextGenerator is the single inference-provider operation the services need.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) string
}

func NewDoctorService(uowFactory unitofwork.RepositoryFactory, gen TextGenerator, log logger.ILogger) IDoctorService {
	return &doctorService{
		uowFactory: uowFactory,
		gen:        gen,
		log:        log,
	}
}

func (s *doctorService) Recommend(ctx context.Context, req *dto.DoctorRecommendRequest) ([]dto.RecommendedDoctor, error) {
	candidates := s.directoryCandidates(ctx, req.Disease)

	if req.Location == nil {
		if len(candidates) > maxNoLocation {
			candidates = candidates[:maxNoLocation]
		}
		result := toRecommendedDTOs(candidates, nil)
		if len(result) == 0 {
			result = s.providerFallback(ctx, req, nil)
		}
		return shapeDoctors(capDoctors(result), req.Disease), nil
	}

	loc := req.Location
	tierOne := bandCandidates(candidates, loc, tierOneMinKm, tierOneMaxKm)
	if len(tierOne) > 0 {
		return shapeDoctors(capDoctors(tierOne), req.Disease), nil
	}

	tierTwo := bandCandidates(candidates, loc, tierTwoMinKm, tierTwoMaxKm)
	if len(tierTwo) > 0 {
		return shapeDoctors(capDoctors(tierTwo), req.Disease), nil
	}

	return shapeDoctors(capDoctors(s.providerFallback(ctx, req, loc)), req.Disease), nil
}

// shapeDoctors fills the placeholder defaults on every returned record, from
// whichever path it came: blank names become Unknown, blank specialties fall
// back to the disease searched for, blank hospitals to the address or the
// placeholder.
func shapeDoctors(doctors []dto.RecommendedDoctor, disease string) []dto.RecommendedDoctor {
	for i := range doctors {
		doctors[i].Name = orPlaceholder(doctors[i].Name, placeholderName)
		doctors[i].Specialty = orPlaceholder(doctors[i].Specialty, disease)
		hospital := doctors[i].Hospital
		if strings.TrimSpace(hospital) == "" {
			hospital = doctors[i].Location.Address
		}
		doctors[i].Hospital = orPlaceholder(hospital, placeholderField)
	}
	return doctors
}

// directoryCandidates matches the disease against specialties; an empty match
// degrades to a broad unfiltered sample.
func (s *doctorService) directoryCandidates(ctx context.Context, disease string) []*entity.Doctor {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	candidates, err := uow.DoctorRepository().FindAll(ctx, specification.BySpecialtyLike{Term: disease})
	if err != nil {
		s.log.Warn("doctor", "specialty lookup failed", map[string]interface{}{"error": err.Error()})
		candidates = nil
	}
	if len(candidates) > 0 {
		return candidates
	}

	broad, err := uow.DoctorRepository().FindAll(ctx, specification.Pagination{Limit: maxBroadSample})
	if err != nil {
		s.log.Warn("doctor", "broad sample failed", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return broad
}

// bandCandidates keeps directory records whose distance from the caller falls
// inside [minKm, maxKm], sorted nearest first. Records without coordinates
// cannot participate in a band.
func bandCandidates(candidates []*entity.Doctor, loc *dto.UserLocation, minKm, maxKm float64) []dto.RecommendedDoctor {
	var banded []dto.RecommendedDoctor
	for _, d := range candidates {
		if d.Latitude == nil || d.Longitude == nil {
			continue
		}
		distance := geo.DistanceKm(loc.Lat, loc.Lng, *d.Latitude, *d.Longitude)
		if distance < minKm || distance > maxKm {
			continue
		}
		rec := toRecommendedDTO(d)
		rec.DistanceKm = &distance
		banded = append(banded, rec)
	}

	sort.Slice(banded, func(i, j int) bool {
		return *banded[i].DistanceKm < *banded[j].DistanceKm
	})
	return banded
}

// providerDoctor is the structured shape requested from the inference
// provider. Parsing is defensive; any malformed entry is skipped.
type providerDoctor struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Hospital  string `json:"hospital"`
	Location  struct {
		Address string   `json:"address"`
		City    string   `json:"city"`
		State   string   `json:"state"`
		Lat     *float64 `json:"lat"`
		Lng     *float64 `json:"lng"`
	} `json:"location"`
}

func (s *doctorService) providerFallback(ctx context.Context, req *dto.DoctorRecommendRequest, loc *dto.UserLocation) []dto.RecommendedDoctor {
	searchRange := "any area"
	if loc != nil {
		searchRange = fmt.Sprintf("within 1 to 7 km of latitude %f, longitude %f", loc.Lat, loc.Lng)
	}

	raw := s.gen.GenerateText(ctx, constant.DoctorPrompt(req.Disease, searchRange, req.Language))
	if raw == "" {
		return nil
	}

	var parsed []providerDoctor
	if err := json.Unmarshal([]byte(firstJSONArray(raw)), &parsed); err != nil {
		s.log.Warn("doctor", "provider fallback unparseable", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var result []dto.RecommendedDoctor
	for _, pd := range parsed {
		rec := dto.RecommendedDoctor{
			Name:      pd.Name,
			Specialty: pd.Specialty,
			Hospital:  pd.Hospital,
			Location: dto.DoctorLocation{
				Address: pd.Location.Address,
				City:    pd.Location.City,
				State:   pd.Location.State,
				Lat:     pd.Location.Lat,
				Lng:     pd.Location.Lng,
			},
			Source: string(entity.DoctorSourceInference),
		}

		// Entries with coordinates are re-checked against the first band;
		// entries without coordinates pass with unknown distance.
		if loc != nil && pd.Location.Lat != nil && pd.Location.Lng != nil {
			distance := geo.DistanceKm(loc.Lat, loc.Lng, *pd.Location.Lat, *pd.Location.Lng)
			if distance < tierOneMinKm || distance > tierOneMaxKm {
				continue
			}
			rec.DistanceKm = &distance
		}
		result = append(result, rec)
	}
	return result
}

func (s *doctorService) Directions(req *dto.DirectionsRequest) *dto.DirectionsResponse {
	return &dto.DirectionsResponse{
		URL: fmt.Sprintf(
			"https://www.google.com/maps/dir/?api=1&origin=%f,%f&destination=%f,%f",
			req.FromLat, req.FromLng, req.ToLat, req.ToLng,
		),
		DistanceKm: geo.DistanceKm(req.FromLat, req.FromLng, req.ToLat, req.ToLng),
	}
}

func toRecommendedDTO(d *entity.Doctor) dto.RecommendedDoctor {
	return dto.RecommendedDoctor{
		Name:      d.Name,
		Specialty: d.Specialty,
		Hospital:  d.Hospital,
		Location: dto.DoctorLocation{
			Address: d.Address,
			City:    d.City,
			State:   d.State,
			Lat:     d.Latitude,
			Lng:     d.Longitude,
		},
		Rating: d.Rating,
		Source: string(entity.DoctorSourceDatabase),
	}
}

func toRecommendedDTOs(doctors []*entity.Doctor, _ *dto.UserLocation) []dto.RecommendedDoctor {
	result := make([]dto.RecommendedDoctor, 0, len(doctors))
	for _, d := range doctors {
		result = append(result, toRecommendedDTO(d))
	}
	return result
}

func capDoctors(doctors []dto.RecommendedDoctor) []dto.RecommendedDoctor {
	if len(doctors) > maxRecommended {
		return doctors[:maxRecommended]
	}
	return doctors
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// firstJSONArray trims any prose around the first [...] block.
func firstJSONArray(raw string) string {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return raw
	}
	return raw[start : end+1]
}
