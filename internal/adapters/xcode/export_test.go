package xcode

// SetFallbackDir points the standard-install fallback somewhere else so
// tests do not observe an Xcode install on the machine running them.
func (l *Locator) SetFallbackDir(dir string) {
	l.fallbackDir = dir
}
