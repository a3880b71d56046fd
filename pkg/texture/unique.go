package texture

import "github.com/google/uuid"

// UniqueTexture owns its storage exclusively. It is not reference counted;
// Close frees the bytes.
type UniqueTexture struct {
	s Storage
}

// NewUnique builds a texture from p; check IsValid on the result.
func NewUnique(p Params, initial []byte) UniqueTexture {
	return UniqueTexture{s: NewStorage(p, initial)}
}

func (t *UniqueTexture) IsValid() bool     { return t.s.IsValid() }
func (t *UniqueTexture) ID() uuid.UUID     { return t.s.ID() }
func (t *UniqueTexture) Params() Params    { return t.s.Params() }
func (t *UniqueTexture) Storage() Storage  { return t.s }
func (t *UniqueTexture) View() TextureView { return TextureView{s: t.s} }
func (t *UniqueTexture) Span() TextureSpan { return TextureSpan{s: t.s} }

// Close destroys the storage and empties t.
func (t *UniqueTexture) Close() {
	t.s.destroy()
	t.s = Storage{}
}

// Share moves the storage into a SharedTexture with a strong count of one.
// t is empty afterwards.
func (t *UniqueTexture) Share() SharedTexture {
	s := t.s
	t.s = Storage{}
	return SharedTexture{s: s}
}
