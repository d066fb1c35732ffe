package services

// Audio payloads below smallAudioBytes pass through untouched; payloads
// above largeAudioBytes are clamped down to exactly largeAudioBytes.
// Anything between the two thresholds also passes through.
const (
	smallAudioBytes = 200_000
	largeAudioBytes = 300_000
)

// CompressAudio enforces the render backend's audio size ceiling by
// truncating oversized payloads. It is a lossy stand-in for real
// transcoding: trailing audio past the ceiling is simply dropped. It
// never fails; callers always get a usable payload back.
//
// TODO: replace truncation with actual transcoding once the render
// backend accepts re-encoded bitrates; the clamp thresholds must stay
// observable-compatible until then.
func CompressAudio(audio []byte) []byte {
	if len(audio) < smallAudioBytes {
		return audio
	}
	if len(audio) > largeAudioBytes {
		// len * (largeAudioBytes / len) collapses to the ceiling itself;
		// slicing directly avoids float rounding on huge payloads.
		return audio[:largeAudioBytes]
	}
	return audio
}
