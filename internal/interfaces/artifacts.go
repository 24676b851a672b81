package interfaces

// ArtifactService persists generated outputs under the configured
// directory using the {slug}_threatmodel_{timestamp}.{ext} convention.
// Write failures are reported to callers as non-fatal warnings attached
// to the primary result, never as hard errors.
type ArtifactService interface {
	// Save writes data and returns the absolute path of the artifact.
	Save(systemName, ext string, data []byte) (string, error)
}
