package llm

import "context"

// fallbackStream adapts Generate into a single-chunk stream for
// backends without a native streaming channel. The contract only
// requires a finite chunk sequence, so one chunk is a valid stream.
func fallbackStream(ctx context.Context, p Provider, req Request) (<-chan Chunk, error) {
	out := make(chan Chunk, 1)
	go func() {
		defer close(out)
		resp, err := p.Generate(ctx, req)
		if err != nil {
			out <- Chunk{Err: err}
			return
		}
		out <- Chunk{Text: string(resp.Content)}
	}()
	return out, nil
}

// OpenStream starts a stream on p, using its native streaming channel
// when it has one and the single-chunk fallback otherwise.
func OpenStream(ctx context.Context, p Provider, req Request) (<-chan Chunk, error) {
	if s, ok := p.(Streamer); ok {
		return s.GenerateStream(ctx, req)
	}
	return fallbackStream(ctx, p, req)
}

// Collect drains a stream into a single string. It returns the text
// accumulated so far alongside any terminal error, so partial output
// is not lost on failure.
func Collect(ch <-chan Chunk) (string, error) {
	var text string
	for chunk := range ch {
		if chunk.Err != nil {
			return text, chunk.Err
		}
		text += chunk.Text
	}
	return text, nil
}
