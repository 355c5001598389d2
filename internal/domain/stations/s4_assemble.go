package stations

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// PCM format delivered by the speech provider and written into the WAV.
const (
	sampleRate     = 24000
	channels       = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8
)

// S4AssembleAudio splices the per-line PCM segments with a short silence gap
// between lines, wraps the result in a RIFF/WAV header and stores it.
type S4AssembleAudio struct {
	store ports.BlobStore
	gap   time.Duration
}

func NewS4AssembleAudio(store ports.BlobStore, gap time.Duration) *S4AssembleAudio {
	return &S4AssembleAudio{store: store, gap: gap}
}

func (s *S4AssembleAudio) Run(ctx context.Context, segments [][]byte) (string, float64, error) {
	if len(segments) == 0 {
		return "", 0, fmt.Errorf("assemble: no segments")
	}

	gapBytes := int(s.gap.Seconds() * sampleRate * channels * bytesPerSample)
	gapBytes -= gapBytes % (channels * bytesPerSample) // keep frame alignment
	silence := make([]byte, gapBytes)

	var pcm []byte
	for i, seg := range segments {
		if i > 0 && gapBytes > 0 {
			pcm = append(pcm, silence...)
		}
		pcm = append(pcm, seg...)
	}

	wav := wrapWAV(pcm)
	duration := float64(len(pcm)) / float64(sampleRate*channels*bytesPerSample)

	path, err := s.store.Put(ctx, "audio", "wav", wav)
	if err != nil {
		return "", 0, fmt.Errorf("assemble store: %w", err)
	}
	return path, duration, nil
}

func wrapWAV(pcm []byte) []byte {
	dataSize := len(pcm)
	byteRate := sampleRate * channels * bytesPerSample
	blockAlign := channels * bytesPerSample

	buf := &bytes.Buffer{}

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(byteRate))
	_ = binary.Write(buf, binary.LittleEndian, uint16(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))
	_, _ = buf.Write(pcm)

	return buf.Bytes()
}
