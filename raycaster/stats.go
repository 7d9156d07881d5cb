package raycaster

// CastStats describes the work done by the last cast on a ray. It is
// diagnostic data; correctness of the cast never depends on it.
type CastStats struct {
	Method              string  `json:"method"`
	Rays                int     `json:"rays"`
	TestedMappedObjects int     `json:"testedMappedObjects"`
	HitMappedObjects    int     `json:"hitMappedObjects"`
	Segments            int     `json:"segments"`
	Time                float64 `json:"time"`
}
