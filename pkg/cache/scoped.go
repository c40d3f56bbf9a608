package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple deployments can share
// one backend. The preview server uses this to keep its Redis keys apart
// from any other instance pointed at the same database.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "sweepskin:dev:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SkinKey generates a prefixed key for skin content.
func (k *ScopedKeyer) SkinKey(contentHash string) string {
	return k.prefix + k.inner.SkinKey(contentHash)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(skinKey string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(skinKey, opts)
}
