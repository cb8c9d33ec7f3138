package geo

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 17.385, lng1: 78.4867,
			lat2: 17.385, lng2: 78.4867,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "hyderabad to secunderabad",
			lat1: 17.385, lng1: 78.4867,
			lat2: 17.4399, lng2: 78.4983,
			want: 6.2, tolerance: 0.3,
		},
		{
			name: "delhi to mumbai",
			lat1: 28.6139, lng1: 77.209,
			lat2: 19.076, lng2: 72.8777,
			want: 1153, tolerance: 15,
		},
		{
			name: "across the equator",
			lat1: 1.0, lng1: 0.0,
			lat2: -1.0, lng2: 0.0,
			want: 222.4, tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("DistanceKm() = %f, want %f +- %f", got, tt.want, tt.tolerance)
			}

			reversed := DistanceKm(tt.lat2, tt.lng2, tt.lat1, tt.lng1)
			if math.Abs(got-reversed) > 1e-9 {
				t.Errorf("distance is not symmetric: %f vs %f", got, reversed)
			}
		})
	}
}
