// Package audio encodes synthesized PCM as 16-bit mono WAV.
package audio

import (
	"fmt"
	"io"
	"os"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/afero"
)

// EncodeWAV encodes samples into an in-memory WAV file. The wav encoder
// needs a WriteSeeker to finalize headers, so the bytes are staged in an
// afero memory filesystem.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	fs := afero.NewMemMapFs()
	const name = "out.wav"
	f, err := fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create in-memory file: %w", err)
	}

	if err := encode(f, samples, sampleRate); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close in-memory file: %w", err)
	}

	reopened, err := fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reopen in-memory file: %w", err)
	}
	defer reopened.Close()
	data, err := io.ReadAll(reopened)
	if err != nil {
		return nil, fmt.Errorf("read encoded wav: %w", err)
	}
	return data, nil
}

// WriteWAVFile writes samples to a WAV file on disk.
func WriteWAVFile(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, samples, sampleRate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encode(ws io.WriteSeeker, samples []int16, sampleRate int) error {
	intData := make([]int, len(samples))
	for i, s := range samples {
		intData[i] = int(s)
	}

	buf := &gaudio.IntBuffer{
		Data: intData,
		Format: &gaudio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		SourceBitDepth: 16,
	}

	enc := wav.NewEncoder(ws, sampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
