package texture

import (
	"log/slog"

	"github.com/google/uuid"
)

// SharedTexture is a reference counted handle. Clone adds a reference and
// Release drops one; the last Release frees the storage while holding the
// write lock, so it cannot race a live SharedTextureLock.
//
// Lock serializes writers. View is not guarded: readers that can overlap a
// writer take RLock instead.
type SharedTexture struct {
	s Storage
}

// NewShared builds a texture from p with a strong count of one.
func NewShared(p Params, initial []byte) SharedTexture {
	t := SharedTexture{s: NewStorage(p, initial)}
	if t.s.IsValid() {
		slog.Debug("shared texture created", slog.String("id", t.s.ID().String()),
			slog.Uint64("bytes", t.s.SizeInBytes()))
	}
	return t
}

func (t SharedTexture) IsValid() bool  { return t.s.IsValid() }
func (t SharedTexture) ID() uuid.UUID  { return t.s.ID() }
func (t SharedTexture) Params() Params { return t.s.Params() }

// StrongCount returns the number of live handles, zero once freed.
func (t SharedTexture) StrongCount() int64 {
	if !t.s.IsValid() {
		return 0
	}
	return t.s.strongCount()
}

// Clone returns a new handle on the same storage.
func (t SharedTexture) Clone() SharedTexture {
	if !t.s.IsValid() {
		return SharedTexture{}
	}
	t.s.addRef()
	return SharedTexture{s: t.s}
}

// Release drops this handle's reference and empties t. Releasing an empty
// handle does nothing.
func (t *SharedTexture) Release() {
	s := t.s
	t.s = Storage{}
	if !s.IsValid() || !s.decRef() {
		return
	}
	id := s.ID()
	s.a.mu.Lock()
	s.destroy()
	s.a.mu.Unlock()
	slog.Debug("shared texture freed", slog.String("id", id.String()))
}

// View is unguarded; see SharedTexture.
func (t SharedTexture) View() TextureView { return TextureView{s: t.s} }

// Lock blocks until no other lock is held and returns the write guard.
func (t SharedTexture) Lock() SharedTextureLock {
	if !t.s.IsValid() {
		return SharedTextureLock{}
	}
	t.s.a.mu.Lock()
	return SharedTextureLock{s: t.s}
}

// RLock blocks while a write lock is held and returns the read guard.
func (t SharedTexture) RLock() SharedTextureReadLock {
	if !t.s.IsValid() {
		return SharedTextureReadLock{}
	}
	t.s.a.mu.RLock()
	return SharedTextureReadLock{s: t.s}
}

// SharedTextureLock holds the write lock of a SharedTexture until Unlock.
type SharedTextureLock struct {
	s Storage
}

// Span is empty for a lock taken on an invalid texture.
func (l SharedTextureLock) Span() TextureSpan { return TextureSpan{s: l.s} }

func (l *SharedTextureLock) Unlock() {
	if l.s.a == nil {
		return
	}
	l.s.a.mu.Unlock()
	l.s = Storage{}
}

// SharedTextureReadLock holds the read lock of a SharedTexture until RUnlock.
type SharedTextureReadLock struct {
	s Storage
}

func (l SharedTextureReadLock) View() TextureView { return TextureView{s: l.s} }

func (l *SharedTextureReadLock) RUnlock() {
	if l.s.a == nil {
		return
	}
	l.s.a.mu.RUnlock()
	l.s = Storage{}
}
