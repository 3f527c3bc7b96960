package riffdump

// ChunkHandler decodes a recognized sub-chunk body into structured
// content on the Subchunk. Decode reports whether it populated the
// Subchunk; a handler may decline a body it cannot make sense of, in
// which case the walker falls back to the text/opaque classification.
// The offset is the absolute position of the body in the input, used
// for error diagnostics.
type ChunkHandler interface {
	CanHandle(tag [4]byte) bool
	Decode(sub *Subchunk, body []byte, offset int) (bool, error)
}

// ChunkRegistry resolves sub-chunk tags to handlers.
type ChunkRegistry struct {
	handlers []ChunkHandler
}

func newDefaultChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{
		handlers: []ChunkHandler{
			&listChunkHandler{},
			&factChunkHandler{},
			&smplChunkHandler{},
			&bextChunkHandler{},
		},
	}
}

// Register appends a handler to the registry.
func (r *ChunkRegistry) Register(handler ChunkHandler) {
	if r == nil || handler == nil {
		return
	}

	r.handlers = append(r.handlers, handler)
}

// Decode dispatches the sub-chunk to the first matching handler.
func (r *ChunkRegistry) Decode(sub *Subchunk, body []byte, offset int) (bool, error) {
	if r == nil || sub == nil {
		return false, nil
	}

	for _, handler := range r.handlers {
		if handler.CanHandle(sub.Tag) {
			return handler.Decode(sub, body, offset)
		}
	}

	return false, nil
}

func bodyCursor(body []byte, offset int) *cursor {
	return &cursor{data: body, base: offset}
}

type listChunkHandler struct{}

func (h *listChunkHandler) CanHandle(tag [4]byte) bool {
	return tag == CIDList
}

// Decode decodes a LIST body. Unlike the informational handlers below,
// a structurally corrupt LIST/INFO chunk aborts the parse: the list
// grammar is part of the container structure, not an optional overlay.
func (h *listChunkHandler) Decode(sub *Subchunk, body []byte, offset int) (bool, error) {
	list, err := decodeListChunk(bodyCursor(body, offset))
	if err != nil {
		return true, err
	}

	sub.Kind = ContentList
	sub.List = list

	return true, nil
}

type factChunkHandler struct{}

func (h *factChunkHandler) CanHandle(tag [4]byte) bool {
	return tag == CIDFact
}

func (h *factChunkHandler) Decode(sub *Subchunk, body []byte, offset int) (bool, error) {
	sampleCount, err := bodyCursor(body, offset).readU32()
	if err != nil {
		return false, nil
	}

	sub.Kind = ContentFact
	sub.Fact = &FactChunk{SampleCount: sampleCount}

	return true, nil
}

type smplChunkHandler struct{}

func (h *smplChunkHandler) CanHandle(tag [4]byte) bool {
	return tag == CIDSmpl
}

func (h *smplChunkHandler) Decode(sub *Subchunk, body []byte, offset int) (bool, error) {
	info, err := decodeSamplerChunk(bodyCursor(body, offset))
	if err != nil {
		return false, nil
	}

	sub.Kind = ContentSampler
	sub.Sampler = info

	return true, nil
}

type bextChunkHandler struct{}

func (h *bextChunkHandler) CanHandle(tag [4]byte) bool {
	return tag == CIDBext
}

func (h *bextChunkHandler) Decode(sub *Subchunk, body []byte, offset int) (bool, error) {
	bext, err := decodeBroadcastChunk(bodyCursor(body, offset))
	if err != nil {
		return false, nil
	}

	sub.Kind = ContentBroadcast
	sub.Broadcast = bext

	return true, nil
}
