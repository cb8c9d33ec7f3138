package constant

import "fmt"

// DoctorPrompt asks the model for 3 real doctors for a disease, optionally
// constrained to a distance band around coordinates, returned as a JSON array.
// The searchRange argument is either "" or a clause like
// " near coordinates 12.9, 77.6 within 1-7 kilometers ONLY".
func DoctorPrompt(disease, searchRange, lang string) string {
	langName := LanguageName(lang)
	return fmt.Sprintf(`Suggest 3 doctors or medical specialists who are proficient in treating "%s".

IMPORTANT: The disease name "%s" may be in English, Hindi, Telugu, or any language. Understand it correctly and suggest appropriate doctors.

Requirements:
- They should be real, reputable medical professionals
- Include their specialty/expertise
- CRITICAL: Suggest doctors%s. Do NOT suggest doctors outside this range.
- IMPORTANT: Prioritize and list the NEAREST doctors first, sorted by distance from the given coordinates (closest first)
- Include hospital or clinic name if possible
- Doctor names, specialties and addresses should be in %s

Return ONLY a valid JSON array with this exact structure (list nearest doctors first):
[
  {
    "name": "Doctor Name",
    "specialty": "Specialty Name",
    "hospital": "Hospital/Clinic Name",
    "location": {
      "address": "Full address",
      "city": "City name",
      "state": "State name",
      "lat": latitude_as_number,
      "lng": longitude_as_number
    }
  }
]

IMPORTANT:
- Include latitude and longitude (lat, lng) in the location object for accurate distance calculation
- Ensure coordinates are provided as numbers, not strings
- Return valid JSON only - no markdown, no code blocks, just pure JSON array`, disease, disease, searchRange, langName)
}
